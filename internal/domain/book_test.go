package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_Folder(t *testing.T) {
	book := &Book{URL: "http://99manga.com/comic/9/", Name: "One Piece"}

	tests := []struct {
		name   string
		volume Volume
		want   string
	}{
		{"plain", Volume{Title: "Vol 01", URL: "http://99manga.com/comic/9/101/"}, "One_Piece/Vol_01"},
		{"illegal_chars", Volume{Title: "a/b: c?", URL: "http://99manga.com/comic/9/102/"}, "One_Piece/ab_c"},
		{"dots_only", Volume{Title: "...", URL: "http://99manga.com/comic/9/103/"}, "One_Piece/103"},
		{"question_marks", Volume{Title: "???", URL: "http://99manga.com/comic/9/104.htm?s=2"}, "One_Piece/104.htm"},
		{"nothing_left", Volume{Title: "***", URL: "http://99manga.com/"}, "One_Piece/untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, book.Folder(tt.volume))
		})
	}
}

func TestBook_Folder_DistinctForEmptyTitles(t *testing.T) {
	book := &Book{URL: "http://99mh.com/comic/1/", Name: "???"}
	a := book.Folder(Volume{Title: "...", URL: "http://99mh.com/comic/1/11/"})
	b := book.Folder(Volume{Title: "???", URL: "http://99mh.com/comic/1/12/"})

	assert.Equal(t, "1/11", a)
	assert.Equal(t, "1/12", b)
	assert.NotEqual(t, a, b)
}
