package textmatch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Técnico", "tecnico"},
		{"  TECNICO ", "tecnico"},
		{"Professor de Matemática", "professor de matematica"},
		{"ASSISTENTE ADMINISTRATIVO", "assistente administrativo"},
		{"Coordenação", "coordenacao"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}

	t.Run("decomposed input folds like composed input", func(t *testing.T) {
		assert.Equal(t, "tecnico", Normalize("Te\u0301cnico"))
	})

	t.Run("marks outside the diacritical block are kept", func(t *testing.T) {
		assert.Equal(t, "\u05d1\u05bc", Normalize("\u05d1\u05bc"))
	})
}

func TestHasIntersection(t *testing.T) {
	assert.True(t, HasIntersection([]string{"CARPINTEIRO"}, []string{"carpinteiro"}))
	assert.True(t, HasIntersection([]string{"Técnico"}, []string{"analista", " tecnico "}))
	assert.False(t, HasIntersection([]string{"carpinteiro"}, []string{"marceneiro"}))

	t.Run("empty inputs never intersect", func(t *testing.T) {
		assert.False(t, HasIntersection(nil, []string{"carpinteiro"}))
		assert.False(t, HasIntersection([]string{}, []string{"carpinteiro"}))
		assert.False(t, HasIntersection([]string{"carpinteiro"}, nil))
		assert.False(t, HasIntersection(nil, nil))
	})

	t.Run("is symmetric", func(t *testing.T) {
		a := []string{"Marceneiro", "assistente administrativo"}
		b := []string{"ASSISTENTE ADMINISTRATIVO"}
		assert.Equal(t, HasIntersection(a, b), HasIntersection(b, a))
	})
}

func TestIntersection(t *testing.T) {
	t.Run("keeps order and casing of the first argument", func(t *testing.T) {
		got := Intersection([]string{"Carpinteiro", "MARCENEIRO"}, []string{"carpinteiro", "marceneiro"})
		assert.Equal(t, []string{"Carpinteiro", "MARCENEIRO"}, got)
	})

	t.Run("keeps near-duplicates", func(t *testing.T) {
		got := Intersection([]string{"Técnico", "tecnico", "analista"}, []string{"TECNICO"})
		assert.Equal(t, []string{"Técnico", "tecnico"}, got)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		got := Intersection([]string{"carpinteiro"}, []string{"professor"})
		require.NotNil(t, got)
		assert.Empty(t, got)

		got = Intersection(nil, nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestNormalizeConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "matematica", Normalize("Matemática"))
			}
		}()
	}
	wg.Wait()
}
