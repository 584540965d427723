// Package ioutils holds the file and image helpers shared by the artwork
// cache and the poster writer.
//
// # Files
//
// WriteFileAtomic hands the callback a temporary sibling of the target and
// renames it into place only when the callback succeeds:
//
//	err := ioutils.WriteFileAtomic("out/poster.png", func(w io.Writer) error {
//	    return svc.EncodePNG(w, img)
//	})
//
// SanitizeFileName turns an arbitrary string, such as an artwork URL
// segment, into a name that is valid on every platform:
//
//	ioutils.SanitizeFileName(`a<b>:c`) // "a_b__c"
//
// # Images
//
// ImageService decodes cached JPEG or PNG art, scales it to the cell size
// with Catmull-Rom and encodes the finished poster:
//
//	svc := ioutils.NewImageService()
//	art, err := svc.DecodeFile(".cache/abc.jpg")
//	cell := svc.Resize(art, 600, 600)
package ioutils
