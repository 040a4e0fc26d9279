package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

func TestExtractTasks(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []entity.GeneratedTask
		wantErr error
	}{
		{
			name: "array surrounded by prose",
			raw: "Sure! Here is your plan:\n" +
				`[{"name":"Design","description":"Wireframes","date":"2025-03-01","tag_name":"ux","tag_color":"#00FF00"}]` +
				"\nLet me know if you need [more] detail.",
			want: []entity.GeneratedTask{
				{Name: "Design", Description: "Wireframes", Date: "2025-03-01", TagName: "ux", TagColor: "#00FF00"},
			},
		},
		{
			name: "brackets inside strings are ignored",
			raw:  `Plan: [{"name":"Fix [bug] \"quoted ]\"","date":"2025-03-02"}] done`,
			want: []entity.GeneratedTask{{Name: `Fix [bug] "quoted ]"`, Date: "2025-03-02"}},
		},
		{
			name: "first decodable array wins",
			raw:  `Options [a, b] then [{"name":"Ship"}]`,
			want: []entity.GeneratedTask{{Name: "Ship"}},
		},
		{
			name: "unmatched bracket in prose",
			raw:  "Plan [draft, see below:\n" + `[{"name":"Design"}]`,
			want: []entity.GeneratedTask{{Name: "Design"}},
		},
		{
			name: "quoted bracket in prose",
			raw:  `It's "quoted [" prose then [{"name":"Design"}]`,
			want: []entity.GeneratedTask{{Name: "Design"}},
		},
		{
			name: "empty array in prose before the schedule",
			raw:  `Returning [] if nothing, else: [{"name":"Design"}]`,
			want: []entity.GeneratedTask{{Name: "Design"}},
		},
		{
			name: "nested arrays before the schedule",
			raw:  `Matrix [[1],[2]] and then [{"name":"Ship"}]`,
			want: []entity.GeneratedTask{{Name: "Ship"}},
		},
		{
			name: "fenced code block",
			raw:  "```json\n[{\"name\":\"Write tests\"}]\n```",
			want: []entity.GeneratedTask{{Name: "Write tests"}},
		},
		{
			name: "empty array",
			raw:  "Nothing to do: []",
			want: []entity.GeneratedTask{},
		},
		{
			name:    "no array",
			raw:     "I cannot help with that.",
			wantErr: domainerrors.ErrNoTaskArray,
		},
		{
			name:    "unterminated array",
			raw:     `[{"name":"Design"}`,
			wantErr: domainerrors.ErrNoTaskArray,
		},
		{
			name:    "balanced but invalid json",
			raw:     `Options [a, b]`,
			wantErr: domainerrors.ErrNoTaskArray,
		},
		{
			name:    "array that is not a task list",
			raw:     `[1, 2, 3]`,
			wantErr: domainerrors.ErrMalformedTaskArray,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: domainerrors.ErrNoTaskArray,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTasks(tt.raw)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
