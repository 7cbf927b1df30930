package pdf

import (
	"crypto/sha1"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	logoMaxWidth   = 60.0
	signatureWidth = 22.6
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

func drawableImage(path string) bool {
	if path == "" {
		return false
	}
	if !imageExts[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	return fileUsable(path)
}

// fileDigest returns the size and SHA-1 of a file, used to skip duplicated
// signature images. ok is false when the file cannot be read.
func fileDigest(path string) (size int64, sum [sha1.Size]byte, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, sum, false
	}
	defer f.Close()
	h := sha1.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return 0, sum, false
	}
	copy(sum[:], h.Sum(nil))
	return n, sum, true
}

func sameContent(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	sa, ha, okA := fileDigest(a)
	sb, hb, okB := fileDigest(b)
	if !okA || !okB || sa != sb {
		return false
	}
	return ha == hb
}

// placeImage draws one image and reports whether it was drawn. go-pdf's
// stream parsers panic on some corrupt files, so a failed image is recovered,
// the renderer error state cleared, and the document carries on without it.
func (d *doc) placeImage(path string, x, y, w float64) (ok bool) {
	defer func() {
		if recover() != nil {
			d.pdf.ClearError()
			ok = false
		}
	}()
	d.pdf.ImageOptions(path, x, y, w, 0, false, imageOpts(path), 0, "")
	if d.pdf.Err() {
		d.pdf.ClearError()
		return false
	}
	return true
}

// drawLogo prints the institution logo centered at the top of the page, at
// most 60mm wide. Does nothing when no usable logo is configured.
func (d *doc) drawLogo() {
	if !drawableImage(d.lh.LogoPath) {
		return
	}
	pageW, _ := d.pdf.GetPageSize()
	x := (pageW - logoMaxWidth) / 2
	if d.placeImage(d.lh.LogoPath, x, d.pdf.GetY(), logoMaxWidth) {
		d.pdf.Ln(logoMaxWidth*0.5 + 4)
	}
}

func imageOpts(path string) (opts fpdf.ImageOptions) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		opts.ImageType = "PNG"
	case ".jpg", ".jpeg":
		opts.ImageType = "JPG"
	case ".gif":
		opts.ImageType = "GIF"
	}
	return opts
}

// signaturePair prints the authorizer and secretary signature blocks side by
// side. A signature image identical to the logo, or a secretary image
// identical to the authorizer one, is skipped so a reused placeholder upload
// does not print twice.
func (d *doc) signaturePair() {
	left, _, _, _ := d.pdf.GetMargins()
	colW := (d.contentWidth() - 10) / 2
	leftX := left
	rightX := left + colW + 10

	authImg := d.lh.AuthorizerImagePath
	secImg := d.lh.SecretaryImagePath
	if !drawableImage(authImg) || sameContent(authImg, d.lh.LogoPath) {
		authImg = ""
	}
	if !drawableImage(secImg) || sameContent(secImg, d.lh.LogoPath) || sameContent(secImg, d.lh.AuthorizerImagePath) {
		secImg = ""
	}

	top := d.pdf.GetY()
	imgBottom := top
	if authImg != "" {
		x := leftX + (colW-signatureWidth)/2
		if d.placeImage(authImg, x, top, signatureWidth) {
			imgBottom = top + signatureWidth
		}
	}
	if secImg != "" {
		x := rightX + (colW-signatureWidth)/2
		if d.placeImage(secImg, x, top, signatureWidth) && top+signatureWidth > imgBottom {
			imgBottom = top + signatureWidth
		}
	}

	d.pdf.SetY(imgBottom + 2)
	d.setFont("", 11)
	d.pdf.SetX(leftX)
	d.cell(colW, lineHeight, d.lh.authorizer(), "", 0, "C", false)
	d.pdf.SetX(rightX)
	d.cell(colW, lineHeight, d.lh.secretary(), "", 1, "C", false)
}
