package service

import (
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate() ([]byte, error)
}

// MenuQRGenerator renders a PNG pointing table guests at the public menu page.
type MenuQRGenerator struct {
	BaseURL string
}

func (g MenuQRGenerator) Generate() ([]byte, error) {
	return qrcode.Encode(g.MenuURL(), qrcode.Medium, 256)
}

func (g MenuQRGenerator) MenuURL() string {
	return strings.TrimRight(g.BaseURL, "/") + "/menu"
}
