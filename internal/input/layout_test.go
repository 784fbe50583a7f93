package input

import (
	"testing"

	"go-coming-soon/internal/config"
	"go-coming-soon/internal/event"

	. "github.com/onsi/gomega"
)

func TestCardRowIsCentredAndDisjoint(t *testing.T) {
	g := NewWithT(t)
	rects := CardRow(4)
	g.Expect(rects).To(HaveLen(4))

	left := rects[0].X
	right := config.ScreenWidth - (rects[3].X + rects[3].W)
	g.Expect(left).To(BeNumerically("~", right, 1e-9))

	for i := 1; i < len(rects); i++ {
		g.Expect(rects[i].X).To(BeNumerically(">=", rects[i-1].X+rects[i-1].W))
		mid := event.Point{X: rects[i].X + 1, Y: rects[i].Y + 1}
		g.Expect(rects[i-1].Contains(mid)).To(BeFalse())
	}
	g.Expect(CardRow(0)).To(BeEmpty())
}
