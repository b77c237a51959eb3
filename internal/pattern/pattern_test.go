package pattern_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/pattern"
)

func grid(fn func(pt dynamo.Point)) {
	for x := -2.5; x <= 2.5; x += 0.25 {
		for y := -2.5; y <= 2.5; y += 0.25 {
			fn(dynamo.Point{X: x, Y: y})
		}
	}
}

var _ = Describe("Transform", func() {
	It("leaves the standard pattern untouched", func() {
		p := pattern.For(pattern.Standard)
		grid(func(pt dynamo.Point) {
			Expect(p.Transform(pt, 12.3, nil)).To(Equal(pt))
		})
	})

	It("scales star distances within the spike envelope", func() {
		p := pattern.For(pattern.Star)
		grid(func(pt dynamo.Point) {
			out := p.Transform(pt, 4.2, nil)
			d0, _ := pt.Polar()
			d1, _ := out.Polar()
			Expect(d1).To(BeNumerically(">=", d0*0.8-1e-12))
			Expect(d1).To(BeNumerically("<=", d0*1.2+1e-12))
		})
		Expect(p.Transform(dynamo.Point{X: 1}, 0, nil).X).To(BeNumerically("~", 1, 1e-12))
	})

	It("bounds the aurora wave and stretch", func() {
		p := pattern.For(pattern.Aurora)
		grid(func(pt dynamo.Point) {
			out := p.Transform(pt, 7, nil)
			Expect(math.Abs(out.X - pt.X)).To(BeNumerically("<=", 0.2+1e-12))
			if pt.Y != 0 {
				ratio := out.Y / pt.Y
				Expect(ratio).To(BeNumerically(">=", 1.0-1e-12))
				Expect(ratio).To(BeNumerically("<=", 1.2+1e-12))
			}
		})
	})

	It("contracts fractal points inside the set", func() {
		p := pattern.For(pattern.Fractal)
		// At phase zero the view is panned by +0.2 on y, so this maps to c = 0.
		pt := dynamo.Point{X: 0, Y: -2.0 / 9.0}
		Expect(p.Transform(pt, 0, nil)).To(Equal(pt.Scale(0.99)))
	})

	It("nudges escaped fractal points by at most 0.15", func() {
		p := pattern.For(pattern.Fractal)
		pt := dynamo.Point{X: 3, Y: 3}
		out := p.Transform(pt, 1.5, nil)
		Expect(math.Hypot(out.X-pt.X, out.Y-pt.Y)).To(BeNumerically("<=", 0.15+1e-12))
	})

	It("adds a tunneling jump only when the draw falls under the threshold", func() {
		p := pattern.For(pattern.Quantum)
		pt := dynamo.Point{X: 0.8, Y: -0.4}

		calm := p.Transform(pt, 2, newScripted(0.5))
		jumped := p.Transform(pt, 2, newScripted(0.001, 0.5, 0.25))

		// jump = 0.1 + 0.5*0.2, direction = 0.25 turn.
		Expect(jumped.X - calm.X).To(BeNumerically("~", 0, 1e-12))
		Expect(jumped.Y - calm.Y).To(BeNumerically("~", 0.2, 1e-12))
	})

	It("keeps quantum interference displacement small", func() {
		p := pattern.For(pattern.Quantum)
		grid(func(pt dynamo.Point) {
			out := p.Transform(pt, 3, newScripted(0.9))
			Expect(math.Hypot(out.X-pt.X, out.Y-pt.Y)).To(BeNumerically("<=", 0.17+1e-12))
		})
	})

	It("projects the lorenz flow with a phase rotation", func() {
		p := pattern.For(pattern.Lorenz)

		z := 0.1
		for i := 0; i < 10; i++ {
			z += 0.005 * -(8.0 / 3.0 * z)
		}

		Expect(p.Transform(dynamo.Point{}, 0, nil).X).To(BeNumerically("~", 0, 1e-12))
		out := p.Transform(dynamo.Point{}, 5*math.Pi, nil)
		Expect(out.X).To(BeNumerically("~", 0.4*z, 1e-12))
		Expect(out.Y).To(BeNumerically("~", 0, 1e-12))
	})

	It("iterates the henon map three times before blending", func() {
		p := pattern.For(pattern.Henon)
		out := p.Transform(dynamo.Point{}, 0, nil)
		Expect(out.X).To(BeNumerically("~", 0.25*1.076, 1e-9))
		Expect(out.Y).To(BeNumerically("~", 0.25*-0.12, 1e-9))
	})

	It("keeps rossler and ikeda close to the base coordinate", func() {
		for _, k := range []pattern.Kind{pattern.Rossler, pattern.Ikeda} {
			p := pattern.For(k)
			grid(func(pt dynamo.Point) {
				out := p.Transform(pt, 1, nil)
				Expect(math.Hypot(out.X-pt.X, out.Y-pt.Y)).To(BeNumerically("<", 1.5), k.String())
			})
		}
	})

	DescribeTable("is deterministic and finite",
		func(k pattern.Kind) {
			p := pattern.For(k)
			Expect(p.Kind()).To(Equal(k))
			grid(func(pt dynamo.Point) {
				a := p.Transform(pt, 9.1, newScripted(0.001, 0.3, 0.7))
				b := p.Transform(pt, 9.1, newScripted(0.001, 0.3, 0.7))
				Expect(a).To(Equal(b))
				Expect(a.IsFinite()).To(BeTrue())
			})
		},
		Entry("standard", pattern.Standard),
		Entry("star", pattern.Star),
		Entry("aurora", pattern.Aurora),
		Entry("fractal", pattern.Fractal),
		Entry("quantum", pattern.Quantum),
		Entry("lorenz", pattern.Lorenz),
		Entry("rossler", pattern.Rossler),
		Entry("henon", pattern.Henon),
		Entry("ikeda", pattern.Ikeda),
	)
})

var _ = Describe("Appearance", func() {
	It("keeps standard appearance within documented bounds", func() {
		p := pattern.For(pattern.Standard)
		for phase := 0.0; phase < 50; phase += 3.7 {
			grid(func(pt dynamo.Point) {
				a := p.Appearance(pt, 0.6, phase, nil)
				Expect(a.S).To(BeNumerically(">=", 0.4-1e-12))
				Expect(a.S).To(BeNumerically("<=", 1.0+1e-12))
				Expect(a.Alpha).To(Equal(0.7))
				Expect(a.Size).To(BeNumerically(">=", 1.5))
				Expect(a.Size).To(BeNumerically("<=", 2.5))
				Expect(a.L).To(BeNumerically(">=", 0.3-1e-12))
				Expect(a.L).To(BeNumerically("<=", 0.7+1e-12))
			})
		}
	})

	It("colors star points like standard ones", func() {
		pt := dynamo.Point{X: 0.4, Y: -1.1}
		Expect(pattern.For(pattern.Star).Appearance(pt, 0.15, 2, nil)).
			To(Equal(pattern.For(pattern.Standard).Appearance(pt, 0.15, 2, nil)))
	})

	It("uses a flat color for points inside the fractal", func() {
		a := pattern.For(pattern.Fractal).Appearance(dynamo.Point{X: 0, Y: -2.0 / 9.0}, 0.8, 0, nil)
		Expect(a).To(Equal(pattern.Appearance{H: 0.8, S: 0.6, L: 0.4, Alpha: 0.7, Size: 1.2}))
	})

	It("flashes quantum points on a rare draw", func() {
		p := pattern.For(pattern.Quantum)
		pt := dynamo.Point{X: 1.1, Y: 0.3}

		normal := p.Appearance(pt, 0.55, 4, newScripted(0.9))
		flash := p.Appearance(pt, 0.55, 4, newScripted(0.001))

		Expect(flash.L).To(Equal(0.9))
		Expect(flash.Alpha).To(Equal(0.9))
		Expect(flash.Size).To(BeNumerically("~", normal.Size*1.5, 1e-12))
		Expect(flash.H).To(Equal(normal.H))
	})

	DescribeTable("produces drawable values",
		func(k pattern.Kind) {
			p := pattern.For(k)
			grid(func(pt dynamo.Point) {
				a := p.Appearance(pt, 0.95, 6.5, newScripted(0.5))
				Expect(a.IsFinite()).To(BeTrue())
				Expect(a.Size).To(BeNumerically(">", 0))
				Expect(a.Alpha).To(BeNumerically(">", 0))
				Expect(a.Alpha).To(BeNumerically("<=", 1))
				Expect(math.Abs(a.H)).To(BeNumerically("<", 1))
			})
		},
		Entry("standard", pattern.Standard),
		Entry("star", pattern.Star),
		Entry("aurora", pattern.Aurora),
		Entry("fractal", pattern.Fractal),
		Entry("quantum", pattern.Quantum),
		Entry("lorenz", pattern.Lorenz),
		Entry("rossler", pattern.Rossler),
		Entry("henon", pattern.Henon),
		Entry("ikeda", pattern.Ikeda),
	)
})

// pinned holds the transformed coordinate and appearance of one point.
type pinned struct {
	tx, ty           float64
	h, s, l, a, size float64
}

const pinnedHue = 0.35

var _ = Describe("Reference values", func() {
	DescribeTable("match the reference pipeline",
		func(k pattern.Kind, pt dynamo.Point, phase float64, want pinned) {
			p := pattern.For(k)
			out := p.Transform(pt, phase, nil)
			Expect(out.X).To(BeNumerically("~", want.tx, 1e-9), "x")
			Expect(out.Y).To(BeNumerically("~", want.ty, 1e-9), "y")

			a := p.Appearance(pt, pinnedHue, phase, nil)
			Expect(a.H).To(BeNumerically("~", want.h, 1e-9), "hue")
			Expect(a.S).To(BeNumerically("~", want.s, 1e-9), "saturation")
			Expect(a.L).To(BeNumerically("~", want.l, 1e-9), "lightness")
			Expect(a.Alpha).To(BeNumerically("~", want.a, 1e-9), "alpha")
			Expect(a.Size).To(BeNumerically("~", want.size, 1e-9), "size")
		},
		Entry("standard at (0.7, -1.2) phase 3.5", pattern.Standard, dynamo.Point{X: 0.7, Y: -1.2}, 3.5,
			pinned{0.7, -1.2, 0.31913081903874346, 0.8537526186843252, 0.38789824910025117, 0.7, 2.2446431199708594}),
		Entry("standard at (-1.4, 0.9) phase 11", pattern.Standard, dynamo.Point{X: -1.4, Y: 0.9}, 11.0,
			pinned{-1.4, 0.9, 0.3894310454380576, 0.8065042604259296, 0.4058748223657684, 0.7, 2.452090341590516}),
		Entry("standard at (2.1, 0.35) phase 0", pattern.Standard, dynamo.Point{X: 2.1, Y: 0.35}, 0.0,
			pinned{2.1, 0.35, 0.360494332722656, 0.4304499070293409, 0.6341174311275808, 0.7, 2.1705871556379037}),
		Entry("star at (0.7, -1.2) phase 3.5", pattern.Star, dynamo.Point{X: 0.7, Y: -1.2}, 3.5,
			pinned{0.8194426492710641, -1.4047588273218243, 0.31913081903874346, 0.8537526186843252, 0.38789824910025117, 0.7, 2.2446431199708594}),
		Entry("star at (-1.4, 0.9) phase 11", pattern.Star, dynamo.Point{X: -1.4, Y: 0.9}, 11.0,
			pinned{-1.279898422960333, 0.822791843331643, 0.3894310454380576, 0.8065042604259296, 0.4058748223657684, 0.7, 2.452090341590516}),
		Entry("star at (2.1, 0.35) phase 0", pattern.Star, dynamo.Point{X: 2.1, Y: 0.35}, 0.0,
			pinned{2.408721844079152, 0.40145364067985856, 0.360494332722656, 0.4304499070293409, 0.6341174311275808, 0.7, 2.1705871556379037}),
		Entry("aurora at (0.7, -1.2) phase 3.5", pattern.Aurora, dynamo.Point{X: 0.7, Y: -1.2}, 3.5,
			pinned{0.5077449594049399, -1.3965317642561406, 0.3699666833293656, 0.8913294106403511, 0.39476503169311405, 0.67539161384481, 2.02617484153443}),
		Entry("aurora at (-1.4, 0.9) phase 11", pattern.Aurora, dynamo.Point{X: -1.4, Y: 0.9}, 11.0,
			pinned{-1.2118538886640453, 1.0331482984743785, 0.44440610825797644, 0.8438276615812609, 0.5596007992385187, 0.5993346653975311, 1.7980039961925933}),
		Entry("aurora at (2.1, 0.35) phase 0", pattern.Aurora, dynamo.Point{X: 2.1, Y: 0.35}, 0.0,
			pinned{2.2734846451188035, 0.3544948479655244, 0.3848216275187192, 0.43852726827592353, 0.5050441701453052, 0.5084069502421753, 1.525220850726526}),
		Entry("fractal at (0.7, -1.2) phase 3.5", pattern.Fractal, dynamo.Point{X: 0.7, Y: -1.2}, 3.5,
			pinned{0.7738330540444421, -1.0694320728477233, 0.6932534581928655, 0.7666397733181471, 0.35527387522832515, 0.668650691638573, 1.5746027665542925}),
		Entry("fractal at (-1.4, 0.9) phase 11", pattern.Fractal, dynamo.Point{X: -1.4, Y: 0.9}, 11.0,
			pinned{-1.4234779361029666, 0.951447303460414, 0.7141033471093969, 0.7507649736839465, 0.35062457283229886, 0.6728206694218793, 1.5912826776875175}),
		Entry("fractal at (2.1, 0.35) phase 0", pattern.Fractal, dynamo.Point{X: 2.1, Y: 0.35}, 0.0,
			pinned{2.153352237284845, 0.36829219564051824, 0.5693242798613188, 0.7962965679526615, 0.46048052388560273, 0.6438648559722637, 1.4754594238890553}),
		Entry("quantum at (0.7, -1.2) phase 3.5", pattern.Quantum, dynamo.Point{X: 0.7, Y: -1.2}, 3.5,
			pinned{0.6210403292075477, -1.064640564355796, 0.476531101884331, 0.7856033229056228, 0.6889805761872954, 0.7141377638741639, 1.7136199374337377}),
		Entry("quantum at (-1.4, 0.9) phase 11", pattern.Quantum, dynamo.Point{X: -1.4, Y: 0.9}, 11.0,
			pinned{-1.2972052986012743, 0.8339176919579622, 0.6016693038646899, 0.9526790784688356, 0.6896599692031351, 0.9369054379584475, 2.716074470813014}),
		Entry("quantum at (2.1, 0.35) phase 0", pattern.Quantum, dynamo.Point{X: 2.1, Y: 0.35}, 0.0,
			pinned{2.1580736842833694, 0.3596789473805615, 0.6216875564960864, 0.9478588183238013, 0.622717311906501, 0.930478424431735, 2.6871529099428075}),
		Entry("lorenz at (0.7, -1.2) phase 3.5", pattern.Lorenz, dynamo.Point{X: 0.7, Y: -1.2}, 3.5,
			pinned{0.43493813776045137, -0.7456160131128682, 0.37413018630462297, 0.7482603726092459, 0.47031781970251885, 0.5804339543487433, 1.3217358173949731}),
		Entry("lorenz at (-1.4, 0.9) phase 11", pattern.Lorenz, dynamo.Point{X: -1.4, Y: 0.9}, 11.0,
			pinned{-0.8233435497578879, 0.5175488129318109, 0.389563559778184, 0.779127119556368, 0.5629495888048957, 0.6318785325939468, 1.527514130375787}),
		Entry("lorenz at (2.1, 0.35) phase 0", pattern.Lorenz, dynamo.Point{X: 2.1, Y: 0.35}, 0.0,
			pinned{1.3368754883437721, 0.327182242304489, 0.4066851257240749, 0.8133702514481498, 0.6579815054318201, 0.6889504190802497, 1.7558016763209987}),
		Entry("rossler at (0.7, -1.2) phase 3.5", pattern.Rossler, dynamo.Point{X: 0.7, Y: -1.2}, 3.5,
			pinned{0.564274302897618, -0.9220377338281839, 0.5486423185133041, 0.9972846370266083, 0.6979634777699563, 0.9972846370266083, 2.9877808666197376}),
		Entry("rossler at (-1.4, 0.9) phase 11", pattern.Rossler, dynamo.Point{X: -1.4, Y: 0.9}, 11.0,
			pinned{-1.0841988978254633, 0.6316334622476829, 0.41251205502235433, 0.7250241100447087, 0.49376808253353155, 0.7250241100447087, 1.7626084952011891}),
		Entry("rossler at (2.1, 0.35) phase 0", pattern.Rossler, dynamo.Point{X: 2.1, Y: 0.35}, 0.0,
			pinned{1.4325523517354384, 0.24208942655783272, 0.354155805612617, 0.608311611225234, 0.4062337084189256, 0.608311611225234, 1.2374022505135533}),
		Entry("henon at (0.7, -1.2) phase 3.5", pattern.Henon, dynamo.Point{X: 0.7, Y: -1.2}, 3.5,
			pinned{0.7521123935313887, -0.6964243926737428, 0.35000676057938146, 0.5007883209656407, 0.400013521158763, 0.6000180282116839, 0.6036269430051814}),
		Entry("henon at (-1.4, 0.9) phase 11", pattern.Henon, dynamo.Point{X: -1.4, Y: 0.9}, 11.0,
			pinned{-1.1095012363381165, 0.8428495938306386, 0.43570452752961136, 0.8096420614610528, 0.5714090550592228, 0.8285454067456304, 0.5722021660649819}),
		Entry("henon at (2.1, 0.35) phase 0", pattern.Henon, dynamo.Point{X: 2.1, Y: 0.35}, 0.0,
			pinned{1.8916026596933375, 0.256950557016375, 0.4909817557157988, 0.9366503635216914, 0.6819635114315976, 0.9759513485754635, 1.5594594594594595}),
		Entry("ikeda at (0.7, -1.2) phase 3.5", pattern.Ikeda, dynamo.Point{X: 0.7, Y: -1.2}, 3.5,
			pinned{0.5297714117272764, -0.9045209704198994, 0.43209009659563175, 0.9283603863825269, 0.669551358363206, 0.9104504829781588, 2.641801931912635}),
		Entry("ikeda at (-1.4, 0.9) phase 11", pattern.Ikeda, dynamo.Point{X: -1.4, Y: 0.9}, 11.0,
			pinned{-1.0545573486965043, 0.6678228428726866, 0.350950100217727, 0.603800400870908, 0.400036107616949, 0.5047505010886351, 1.01900200435454}),
		Entry("ikeda at (2.1, 0.35) phase 0", pattern.Ikeda, dynamo.Point{X: 2.1, Y: 0.35}, 0.0,
			pinned{1.587972224056562, 0.26341868380103683, 0.4346019561359201, 0.9384078245436804, 0.6862996392809662, 0.9230097806796006, 2.6920391227184024}),
	)
})
