package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/n8n-ready/internal/domain"
)

func TestTemplatesMatchTheirProfile(t *testing.T) {
	tests := []struct {
		profile domain.Profile
	}{
		{profile: domain.ProfileLocal},
		{profile: domain.ProfileProd},
	}
	for _, tt := range tests {
		t.Run(string(tt.profile), func(t *testing.T) {
			compose, err := fs.ReadFile(Templates(), string(tt.profile)+"/"+domain.ComposeFileName)
			require.NoError(t, err)
			assert.Equal(t, tt.profile, domain.DetectProfile(string(compose), true))

			_, err = fs.Stat(Templates(), string(tt.profile)+"/"+domain.EnvExampleName)
			assert.NoError(t, err, ".env.example must ship with the template")
		})
	}
}
