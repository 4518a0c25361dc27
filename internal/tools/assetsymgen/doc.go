// Package assetsymgen generates typed image-name constants from an asset
// catalog.
//
// A catalog is either an Xcode .xcassets directory or a flat manifest file
// (YAML, JSON, HCL or plain text). Every image entry becomes one exported
// constant whose value is the catalog key verbatim. Any catalog problem
// (missing file, malformed contents, unsupported characters, two keys that
// derive the same identifier) aborts generation, so the generated package has
// no failure path at runtime.
//
// Typical use from the package that owns the catalog:
//
//	//go:generate go run github.com/louisbranch/sgfplayer/cmd/assetsymgen -manifest Assets.xcassets -out imagename_gen.go
package assetsymgen
