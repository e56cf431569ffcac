package md2office

import "os"

// AssetResolver checks whether an image path refers to a readable asset.
// The document mapper uses it to decide between placing an image and
// degrading to the alt-text fallback.
type AssetResolver interface {
	Resolve(path string) bool
}

// fileAssetResolver resolves image paths against the local filesystem.
type fileAssetResolver struct{}

func (fileAssetResolver) Resolve(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// resolveAll is an AssetResolver that accepts every path. Useful for
// callers that resolve assets downstream (e.g. URLs handled by the
// writer) and in tests.
type resolveAll struct{}

func (resolveAll) Resolve(string) bool { return true }

// ResolveAll returns a resolver that accepts every path.
func ResolveAll() AssetResolver { return resolveAll{} }
