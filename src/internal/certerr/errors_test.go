// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
)

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "Configf wraps ErrConfig",
			err:      certerr.Configf("missing %s", "commonName"),
			sentinel: certerr.ErrConfig,
		},
		{
			name:     "Generationf wraps ErrGeneration",
			err:      certerr.Generationf("key generation failed"),
			sentinel: certerr.ErrGeneration,
		},
		{
			name:     "Outputf wraps ErrOutput",
			err:      certerr.Outputf("cannot write %s", "cert.pem"),
			sentinel: certerr.ErrOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel), "expected error to match its sentinel")
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrorCategoriesAreDisjoint(t *testing.T) {
	err := certerr.Configf("bad input")

	assert.False(t, errors.Is(err, certerr.ErrGeneration))
	assert.False(t, errors.Is(err, certerr.ErrOutput))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, certerr.ExitOK},
		{"config error", certerr.Configf("bad digest"), certerr.ExitConfig},
		{"generation error", certerr.Generationf("no entropy"), certerr.ExitGeneration},
		{"output error", certerr.Outputf("disk full"), certerr.ExitOutput},
		{"uncategorized error", errors.New("something else"), certerr.ExitFailure},
		{
			"config error wrapped again",
			fmt.Errorf("while resolving: %w", certerr.Configf("bad digest")),
			certerr.ExitConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, certerr.ExitCode(tt.err))
		})
	}
}
