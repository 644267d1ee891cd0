package stego

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
)

func init() {
	// Silence logs during tests
	log.Logger = log.Output(io.Discard)
}

func patternImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	// Fill with some pattern so it's not just zeroes
	for i := 0; i < len(img.Pix); i++ {
		img.Pix[i] = uint8(i % 255)
	}
	return img
}

func randomPayload(n int, seed int64) []byte {
	data := make([]byte, n)
	rand.New(rand.NewSource(seed)).Read(data)
	return data
}

func TestEndToEndSteganography(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "output.png")

	message := []byte("This is an integration test message!")
	passphrase := "correct-horse-battery-staple"

	stegoImage, err := Encrypt(context.Background(), patternImage(100, 99), message, WithPassphrase(passphrase))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		t.Fatalf("Failed to create output image: %v", err)
	}
	if err := png.Encode(f, stegoImage); err != nil {
		t.Fatalf("Failed to encode output image: %v", err)
	}
	f.Close()

	f, err = os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open output image: %v", err)
	}
	defer f.Close()
	loaded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode output image: %v", err)
	}

	revealed, err := Decrypt(context.Background(), loaded, WithPassphrase(passphrase))
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(revealed, message) {
		t.Errorf("Revealed message did not match.\nExpected: %q\nGot:      %q", message, revealed)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		size       int
		passphrase string
		version    byte
	}{
		{"empty payload", 4, 4, 0, "", CurrentVersion},
		{"empty payload with passphrase", 4, 4, 0, "pass", CurrentVersion},
		{"plain v1", 40, 30, 500, "", CurrentVersion},
		{"plain v0", 40, 30, 500, "", LegacyVersion},
		{"masked v1", 40, 30, 500, "pass", CurrentVersion},
		{"masked v0", 40, 30, 500, "pass", LegacyVersion},
		{"odd size", 17, 13, 101, "ünïcødé pässwörd", CurrentVersion},
		{"full image", 20, 20, Capacity(20, 20) - HeaderSize, "pass", CurrentVersion},
		{"beyond cancel interval", 128, 128, 2 * cancelCheckInterval, "pass", CurrentVersion},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cover := patternImage(tt.width, tt.height)
			payload := randomPayload(tt.size, int64(i))

			stegoImage, err := Encrypt(context.Background(), cover, payload,
				WithPassphrase(tt.passphrase), WithVersion(tt.version))
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}

			got, err := Decrypt(context.Background(), stegoImage, WithPassphrase(tt.passphrase))
			if err != nil {
				t.Fatalf("Decrypt failed: %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("payload mismatch: got %d bytes, want %d", len(got), len(payload))
			}

			for p := 0; p < len(cover.Pix); p++ {
				if p%4 == 3 {
					if cover.Pix[p] != stegoImage.Pix[p] {
						t.Fatalf("alpha of pixel %d changed", p/4)
					}
					continue
				}
				if cover.Pix[p]&keepMask != stegoImage.Pix[p]&keepMask {
					t.Fatalf("upper bits of channel %d changed", p)
				}
			}
		})
	}
}

func TestEncryptDoesNotModifyCover(t *testing.T) {
	cover := patternImage(10, 10)
	before := append([]byte(nil), cover.Pix...)

	if _, err := Encrypt(context.Background(), cover, []byte("hello")); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if !bytes.Equal(before, cover.Pix) {
		t.Error("Encrypt modified its input image")
	}
}

func TestCapacityBoundary(t *testing.T) {
	payload := []byte("1234567")

	// 4x4 holds exactly 12 bytes: 5 header + 7 payload.
	if _, err := Encrypt(context.Background(), patternImage(4, 4), payload); err != nil {
		t.Errorf("Encrypt at exact capacity failed: %v", err)
	}

	// 5x3 holds 11 bytes.
	_, err := Encrypt(context.Background(), patternImage(5, 3), payload)
	if !errors.Is(err, ErrImageTooSmall) {
		t.Errorf("Encrypt one byte over capacity: got %v, want ErrImageTooSmall", err)
	}

	var stegoErr *Error
	if !errors.As(err, &stegoErr) || stegoErr.Msg != "image too small" {
		t.Errorf("expected *Error with message %q, got %#v", "image too small", err)
	}
}

func TestEncryptUnknownVersion(t *testing.T) {
	_, err := Encrypt(context.Background(), patternImage(10, 10), []byte("x"), WithVersion(2))
	if !errors.Is(err, ErrUnsupportedHeaderVersion) {
		t.Errorf("got %v, want ErrUnsupportedHeaderVersion", err)
	}
}

func TestWrongPassword(t *testing.T) {
	cover := patternImage(100, 100)
	message := []byte("Secret")

	stegoImage, err := Encrypt(context.Background(), cover, message, WithPassphrase("correct"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	for _, pass := range []string{"wrong", "Correct", "correct ", "x"} {
		got, err := Decrypt(context.Background(), stegoImage, WithPassphrase(pass))
		if err == nil {
			if bytes.Equal(got, message) {
				t.Errorf("passphrase %q revealed the message", pass)
			}
			continue
		}
		if !errors.Is(err, ErrUnsupportedHeaderVersion) &&
			!errors.Is(err, ErrPayloadTooLarge) &&
			!errors.Is(err, ErrAllocationOverflow) {
			t.Errorf("passphrase %q: unexpected error %v", pass, err)
		}
	}
}

func TestMissingPassword(t *testing.T) {
	stegoImage, err := Encrypt(context.Background(), patternImage(50, 50), []byte("Secret"), WithPassphrase("pass"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	got, err := Decrypt(context.Background(), stegoImage)
	if err == nil && bytes.Equal(got, []byte("Secret")) {
		t.Error("message revealed without a passphrase")
	}
}

func hiddenHeaderImage(t *testing.T, w, h int, header []byte) *image.NRGBA {
	t.Helper()
	img := patternImage(w, h)
	writer := NewPixelWriter(img)
	if _, err := writer.Write(header); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	return img
}

func TestDecryptCorruptHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   error
	}{
		{"unsupported version", []byte{7, 0, 0, 0, 1}, ErrUnsupportedHeaderVersion},
		{"size beyond capacity", []byte{1, 0, 0, 0xFF, 0xFF}, ErrPayloadTooLarge},
		{"negative size", []byte{1, 0x80, 0, 0, 0}, ErrAllocationOverflow},
		{"small negative size", []byte{0, 0xFF, 0xFF, 0xFF, 0xFF}, ErrAllocationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := hiddenHeaderImage(t, 10, 10, tt.header)
			payload, err := Decrypt(context.Background(), img)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if payload != nil {
				t.Error("failed Decrypt returned a buffer")
			}
		})
	}
}

func TestDecryptTinyImage(t *testing.T) {
	_, err := Decrypt(context.Background(), patternImage(2, 2))
	if !errors.Is(err, ErrImageTooSmall) {
		t.Errorf("got %v, want ErrImageTooSmall", err)
	}
}

func TestVersionsMaskPayloadDifferently(t *testing.T) {
	cover := patternImage(30, 30)
	payload := randomPayload(200, 7)

	v0, err := Encrypt(context.Background(), cover, payload, WithPassphrase("pass"), WithVersion(LegacyVersion))
	if err != nil {
		t.Fatalf("Encrypt v0 failed: %v", err)
	}
	v1, err := Encrypt(context.Background(), cover, payload, WithPassphrase("pass"), WithVersion(CurrentVersion))
	if err != nil {
		t.Fatalf("Encrypt v1 failed: %v", err)
	}

	// Header pixels differ only in the version byte; the payload must differ
	// because version 1 switches keystreams.
	headerPixels := pixelsFor(HeaderSize)
	if bytes.Equal(v0.Pix[headerPixels*4:], v1.Pix[headerPixels*4:]) {
		t.Error("version 0 and 1 produced identical payload pixels")
	}
}

func TestLegacyUnsupported(t *testing.T) {
	suite := CipherSuite{Current: DefaultCipherSuite().Current}

	_, err := Encrypt(context.Background(), patternImage(10, 10), []byte("x"),
		WithPassphrase("pass"), WithCipherSuite(suite))
	if !errors.Is(err, ErrLegacyUnsupported) {
		t.Errorf("Encrypt: got %v, want ErrLegacyUnsupported", err)
	}

	_, err = Decrypt(context.Background(), patternImage(10, 10),
		WithPassphrase("pass"), WithCipherSuite(suite))
	if !errors.Is(err, ErrLegacyUnsupported) {
		t.Errorf("Decrypt: got %v, want ErrLegacyUnsupported", err)
	}

	// Without a passphrase no keystream is needed.
	img, err := Encrypt(context.Background(), patternImage(10, 10), []byte("x"), WithCipherSuite(suite))
	if err != nil {
		t.Fatalf("plain Encrypt failed: %v", err)
	}
	if _, err := Decrypt(context.Background(), img, WithCipherSuite(suite)); err != nil {
		t.Errorf("plain Decrypt failed: %v", err)
	}
}

func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cover := patternImage(64, 64)
	payload := randomPayload(1000, 1)

	out, err := Encrypt(ctx, cover, payload)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Encrypt: got %v, want context.Canceled", err)
	}
	if out != nil {
		t.Error("canceled Encrypt returned an image")
	}

	stegoImage, err := Encrypt(context.Background(), cover, payload)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	got, err := Decrypt(ctx, stegoImage)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Decrypt: got %v, want context.Canceled", err)
	}
	if got != nil {
		t.Error("canceled Decrypt returned a buffer")
	}
}

func TestCancellationEmptyPayload(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := Encrypt(ctx, patternImage(8, 8), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Encrypt: got %v, want context.Canceled", err)
	}
	if out != nil {
		t.Error("canceled Encrypt returned an image")
	}

	stegoImage, err := Encrypt(context.Background(), patternImage(8, 8), nil)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if _, err := Decrypt(ctx, stegoImage); !errors.Is(err, context.Canceled) {
		t.Errorf("Decrypt: got %v, want context.Canceled", err)
	}
}

func TestProgressOutput(t *testing.T) {
	var progress bytes.Buffer
	_, err := Encrypt(context.Background(), patternImage(20, 20), []byte("progress"), WithProgress(&progress))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if progress.Len() == 0 {
		t.Error("expected progress output")
	}
}

func TestGetCapacity(t *testing.T) {
	tests := []struct {
		width, height int
		want          int
	}{
		{100, 100, 7500},
		{4, 4, 12},
		{5, 3, 11},
		{1, 1, 0},
		{2, 2, 3},
		{0, 10, 0},
	}

	for _, tt := range tests {
		if got := Capacity(tt.width, tt.height); got != tt.want {
			t.Errorf("Capacity(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
		}
	}
	if got := PayloadCapacity(2, 2); got != 0 {
		t.Errorf("PayloadCapacity(2, 2) = %d, want 0", got)
	}
	if got := PayloadCapacity(100, 100); got != 7495 {
		t.Errorf("PayloadCapacity(100, 100) = %d, want 7495", got)
	}
}
