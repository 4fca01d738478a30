package qr

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// ImageDataURL renders the payload as a PNG QR image and returns it as a
// base64 data URL suitable for embedding in an <img> tag or JSON response.
// Medium error correction keeps dense payloads scannable on printed labels.
func ImageDataURL(data string) (string, error) {
	png, err := qrcode.Encode(data, qrcode.Medium, 512)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
