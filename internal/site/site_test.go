package site

import (
	"testing"

	"comic99/internal/cipher/ciphertest"
	"comic99/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		host    string
		id      domain.VariantID
		charset string
	}{
		{"99manga.com", domain.Legacy1, "gb2312"},
		{"99comic.com", domain.Legacy2, "gb2312"},
		{"99mh.com", domain.Modern, "utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			v, err := Lookup(tt.host)
			require.NoError(t, err)
			assert.Equal(t, tt.id, v.ID)
			assert.Equal(t, tt.charset, v.Charset)
		})
	}

	_, err := Lookup("example.com")
	var unsupported *domain.UnsupportedSiteError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "example.com", unsupported.Domain)
}

func TestNew_Unsupported(t *testing.T) {
	for _, rawURL := range []string{"http://example.com/comic/1/", "http://www.99mh.com/comic/1/", "99manga.com/comic/1/"} {
		_, err := New(rawURL)
		var unsupported *domain.UnsupportedSiteError
		assert.ErrorAs(t, err, &unsupported, rawURL)
	}
}

func TestClient_DecodePictureList_Legacy1(t *testing.T) {
	c, err := New("http://99manga.com/comic/9912/")
	require.NoError(t, err)

	fragments := []string{"ok-comic01/a/act_001/z_0001_1.JPG", "ok-comic01/a/act_001/z_0002_2.JPG"}
	body := `<script>var PicListUrl = "` + ciphertest.Encode(fragments, "gsanuxoewrm") + `";</script>`

	urls, err := c.DecodePictureList("http://99manga.com/comic/9912/114232/?s=3", body)
	require.NoError(t, err)
	require.Len(t, urls, 2)

	for i, u := range urls {
		assert.Equal(t, "http://2.99manga.com:9393/dm03/"+fragments[i], u)
	}
}

func TestClient_DecodePictureList_Legacy2(t *testing.T) {
	c, err := New("http://99comic.com/comic/1/")
	require.NoError(t, err)

	body := `var PicListUrls = "` + ciphertest.Encode([]string{"x/1.png"}, "zhangxoewrm") + `";`

	urls, err := c.DecodePictureList("http://99comic.com/comic/1/2/?s=16", body)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://2.99comic.com:9393/dm16/x/1.png"}, urls)
}

func TestClient_DecodePictureList_Modern(t *testing.T) {
	c, err := New("http://99mh.com/comic/1/")
	require.NoError(t, err)

	key := "kbcdefghijx"
	raw := ciphertest.Frame(ciphertest.Encode([]string{"a.jpg", "b.jpg"}, key), key, 'c')
	body := `var sFiles="` + raw + `";var sPath="2021/03/";`

	urls, err := c.DecodePictureList("http://99mh.com/comic/1/2/", body)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"http://images.99mh.com/2021/03/a.jpg",
		"http://images.99mh.com/2021/03/b.jpg",
	}, urls)
}

func TestClient_ServerPrefix_Errors(t *testing.T) {
	c, err := New("http://99manga.com/comic/1/")
	require.NoError(t, err)

	_, err = c.ServerPrefix("http://99manga.com/comic/1/2/", "")
	var notFound *domain.PatternNotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = c.ServerPrefix("http://99manga.com/comic/1/2/?s=x", "")
	var decodeErr *domain.DecodeError
	assert.ErrorAs(t, err, &decodeErr)

	for _, s := range []string{"0", "17", "-1"} {
		_, err = c.ServerPrefix("http://99manga.com/comic/1/2/?s="+s, "")
		var indexErr *domain.ServerIndexError
		assert.ErrorAs(t, err, &indexErr, s)
	}

	m, err := New("http://99mh.com/comic/1/")
	require.NoError(t, err)

	_, err = m.ServerPrefix("", `var sFiles="abc";`)
	assert.ErrorAs(t, err, &notFound)
}

func TestClient_ExtractEncodedList(t *testing.T) {
	c, err := New("http://99manga.com/comic/1/")
	require.NoError(t, err)

	got, err := c.ExtractEncodedList(`var  PicListUrl="abc"; var PicListUrl = "def";`)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	for _, body := range []string{"", `var PicListUrl = "";`, `var PicListUrls = "abc";`} {
		_, err := c.ExtractEncodedList(body)
		var notFound *domain.PatternNotFoundError
		assert.ErrorAs(t, err, &notFound, body)
	}
}

const legacyLanding = `<html><body>
<div class="title">首页 >> 海贼王 集</div>
<div class="vol"><ul class="bl">
<li><a href="/comic/9912/3/">海贼王 3集</a></li>
<li><a href="/comic/9912/1/">海贼王 1集</a></li>
<li><a href="/comic/9912/x/">番外篇</a></li>
<li><a href="/comic/9912/2/">海贼王 2集</a></li>
</ul></div>
</body></html>`

func TestClient_Legacy_Landing(t *testing.T) {
	c, err := New("http://99manga.com/comic/9912/")
	require.NoError(t, err)

	volumes, err := c.ExtractVolumes(legacyLanding)
	require.NoError(t, err)
	assert.Equal(t, []domain.Volume{
		{Title: "海贼王 1集", URL: "http://99manga.com/comic/9912/1/"},
		{Title: "海贼王 2集", URL: "http://99manga.com/comic/9912/2/"},
		{Title: "海贼王 3集", URL: "http://99manga.com/comic/9912/3/"},
		{Title: "番外篇", URL: "http://99manga.com/comic/9912/x/"},
	}, volumes)

	title, err := c.ExtractBookTitle(legacyLanding)
	require.NoError(t, err)
	assert.Equal(t, "海贼王", title)
}

const modernLanding = `<html><body>
<div class="cTitle">
	火影忍者
	  完结
</div>
<div id="subBookListAct">
<a href="http://99mh.com/comic/7/2/">火影忍者 2集</a>
<a href="http://99mh.com/comic/7/1/">火影忍者 1集</a>
</div>
</body></html>`

func TestClient_Modern_Landing(t *testing.T) {
	c, err := New("http://99mh.com/comic/7/")
	require.NoError(t, err)

	volumes, err := c.ExtractVolumes(modernLanding)
	require.NoError(t, err)
	assert.Equal(t, []domain.Volume{
		{Title: "火影忍者 1集", URL: "http://99mh.com/comic/7/1/"},
		{Title: "火影忍者 2集", URL: "http://99mh.com/comic/7/2/"},
	}, volumes)

	title, err := c.ExtractBookTitle(modernLanding)
	require.NoError(t, err)
	assert.Equal(t, "火影忍者 完结", title)
}

func TestClient_Landing_Missing(t *testing.T) {
	tests := []struct {
		name string
		url  string
		body string
	}{
		{"legacy_no_container", "http://99manga.com/comic/1/", `<div class="vol"></div>`},
		{"legacy_empty_list", "http://99manga.com/comic/1/", `<div class="vol"><ul class="bl"></ul></div>`},
		{"legacy_li_without_link", "http://99comic.com/comic/1/", `<div class="vol"><ul class="bl"><li>soon</li></ul></div>`},
		{"modern_no_container", "http://99mh.com/comic/1/", `<div id="other"><a href="x">1</a></div>`},
		{"modern_empty_list", "http://99mh.com/comic/1/", `<div id="subBookListAct"></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.url)
			require.NoError(t, err)

			_, err = c.ExtractVolumes(tt.body)
			var notFound *domain.PatternNotFoundError
			assert.ErrorAs(t, err, &notFound)

			_, err = c.ExtractBookTitle(tt.body)
			assert.ErrorAs(t, err, &notFound)
		})
	}
}
