package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/core/domain"
)

func TestQuery_BuildPathList(t *testing.T) {
	tests := []struct {
		name       string
		buildPaths string
		want       []string
		wantErr    bool
	}{
		{
			name:       "empty array",
			buildPaths: "[]",
			want:       []string{},
		},
		{
			name:       "two paths",
			buildPaths: `["shared", "vendor"]`,
			want:       []string{"shared", "vendor"},
		},
		{
			name:       "not json",
			buildPaths: "shared,vendor",
			wantErr:    true,
		},
		{
			name:       "wrong element type",
			buildPaths: "[1, 2]",
			wantErr:    true,
		},
		{
			name:       "empty string",
			buildPaths: "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := domain.Query{BuildPaths: tt.buildPaths}
			got, err := q.BuildPathList()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrBuildPathsMalformed))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
