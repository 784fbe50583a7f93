package render

import (
	"image/color"
	"testing"

	. "github.com/onsi/gomega"
)

func TestParseHex(t *testing.T) {
	g := NewWithT(t)
	c, err := ParseHex("#10b981")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(c).To(Equal(color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 255}))

	_, err = ParseHex("#fff")
	g.Expect(err).To(HaveOccurred())
	_, err = ParseHex("zzzzzz")
	g.Expect(err).To(HaveOccurred())
}

func TestGradientAt(t *testing.T) {
	g := NewWithT(t)
	gr := Gradient{From: color.RGBA{0, 0, 0, 255}, To: color.RGBA{200, 100, 50, 255}}
	g.Expect(gr.At(0)).To(Equal(gr.From))
	g.Expect(gr.At(1)).To(Equal(gr.To))
	g.Expect(gr.At(2)).To(Equal(gr.To))
	g.Expect(gr.At(0.5)).To(Equal(color.RGBA{100, 50, 25, 255}))
}

func TestWithAlphaPremultiplies(t *testing.T) {
	g := NewWithT(t)
	c := WithAlpha(color.RGBA{200, 100, 50, 255}, 0.5)
	g.Expect(c).To(Equal(color.RGBA{100, 50, 25, 127}))
}
