// Package imagename names the board viewer's asset catalog images.
//
// Each catalog image has one typed constant whose value is its catalog key,
// so callers load images with imagename.BoardKaya.Key() instead of a raw
// string. The constants are generated from Assets.xcassets and never change
// at runtime; add or rename an image set in the catalog and run go generate.
package imagename

//go:generate go run github.com/louisbranch/sgfplayer/cmd/assetsymgen -manifest Assets.xcassets -out imagename_gen.go -reserved Variants,PickVariant,StemClam,StemGoLid
