package mock

import "github.com/fwojciec/huepick"

// Compile-time interface verification.
var _ huepick.SwatchStore = (*SwatchStore)(nil)

// SwatchStore is a mock implementation of huepick.SwatchStore.
type SwatchStore struct {
	LoadFn func(path string) ([]huepick.Swatch, error)
	SaveFn func(path string, swatches []huepick.Swatch) error
}

func (s *SwatchStore) Load(path string) ([]huepick.Swatch, error) {
	return s.LoadFn(path)
}

func (s *SwatchStore) Save(path string, swatches []huepick.Swatch) error {
	return s.SaveFn(path, swatches)
}
