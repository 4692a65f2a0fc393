package templater

import (
	"testing"

	"comic99/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestExecTemplate(t *testing.T) {
	book := &domain.Book{Name: "海贼王"}

	tests := []struct {
		name     string
		volume   string
		template string
		want     string
	}{
		{"default", "海贼王 3集", "{book} - {volume}", "海贼王 - 海贼王 3集"},
		{"padded_number", "海贼王 3集", "{book:<.>} Vol. {num:3}", "海贼王 Vol. 003"},
		{"plain_number", "海贼王 12集", "{num}", "12"},
		{"no_number", "番外篇", "{book} {num:3}{volume: - <.>}", "海贼王  - 番外篇"},
		{"unknown_var", "海贼王 1集", "{other}", "{other}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := New(book, domain.Volume{Title: tt.volume})
			assert.Equal(t, tt.want, tmpl.ExecTemplate(tt.template))
		})
	}
}
