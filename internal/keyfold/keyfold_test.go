package keyfold

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already folded", in: "get", want: "get"},
		{name: "upper ascii", in: "GET", want: "get"},
		{name: "mixed ascii", in: "CoNnEcT", want: "connect"},
		{name: "empty", in: "", want: ""},
		{name: "digits and punctuation", in: "HTTP_1.1", want: "http_1.1"},
		{name: "german sharp s", in: "STRASSE", want: "strasse"},
		{name: "sharp s folds to ss", in: "straße", want: "strasse"},
		{name: "greek sigma", in: "ΣΊΣΥΦΟΣ", want: "σίσυφοσ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestFold_NormalizesComposition(t *testing.T) {
	composed := "Caf\u00e9"
	decomposed := "Cafe\u0301"

	require.NotEqual(t, composed, decomposed)
	require.True(t, Equal(composed, decomposed))
	require.True(t, Equal("CAF\u00c9", decomposed))
}

func TestFold_Concurrent(t *testing.T) {
	const workers = 32

	var wg sync.WaitGroup
	errs := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := Fold("Ünïcödé"); got != "ünïcödé" {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("Fold under concurrency = %q", got)
	}
}
