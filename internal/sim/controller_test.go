package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/incline/internal/config"
	"github.com/san-kum/incline/internal/incline"
	"github.com/san-kum/incline/internal/sim"
)

type recorder struct {
	samples []sim.Sample
	times   []float64
}

func (r *recorder) OnStep(s sim.Sample, t float64) {
	r.samples = append(r.samples, s)
	r.times = append(r.times, t)
}

func runToEnd(c *sim.Controller) int {
	ticks := 0
	for c.State() == sim.Running {
		c.Tick()
		ticks++
		Expect(ticks).To(BeNumerically("<", 1000), "run never completed")
	}
	return ticks
}

var _ = Describe("Controller", func() {
	var (
		presets []config.Preset
		ctrl    *sim.Controller
	)

	BeforeEach(func() {
		presets = config.Presets()
		var err error
		ctrl, err = sim.New(presets, sim.NewFixedClock(60), nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts idle on the first preset", func() {
		Expect(ctrl.State()).To(Equal(sim.Idle))
		Expect(ctrl.Index()).To(Equal(0))
		Expect(ctrl.Preset().Length).To(Equal(0.5))
		Expect(ctrl.State().ToggleLabel()).To(Equal("Start"))
	})

	It("rejects an empty preset table and a nil clock", func() {
		_, err := sim.New(nil, sim.NewFixedClock(60), nil)
		Expect(err).To(MatchError(incline.ErrInvalidPresets))

		_, err = sim.New(presets, nil, nil)
		Expect(err).To(HaveOccurred())
	})

	Describe("Toggle", func() {
		It("cycles idle, running, paused, running", func() {
			ctrl.Toggle()
			Expect(ctrl.State()).To(Equal(sim.Running))
			Expect(ctrl.State().ToggleLabel()).To(Equal("Pause"))

			ctrl.Toggle()
			Expect(ctrl.State()).To(Equal(sim.Paused))
			Expect(ctrl.State().ToggleLabel()).To(Equal("Resume"))

			ctrl.Toggle()
			Expect(ctrl.State()).To(Equal(sim.Running))
		})
	})

	Describe("Tick", func() {
		It("does nothing while idle", func() {
			Expect(ctrl.Tick()).To(BeFalse())
			Expect(ctrl.Elapsed()).To(BeZero())
			Expect(ctrl.Trace()).To(BeEmpty())
		})

		It("freezes time while paused", func() {
			ctrl.Toggle()
			ctrl.Tick()
			ctrl.Tick()
			elapsed := ctrl.Elapsed()

			ctrl.Toggle()
			for i := 0; i < 5; i++ {
				Expect(ctrl.Tick()).To(BeFalse())
			}
			Expect(ctrl.Elapsed()).To(Equal(elapsed))
			Expect(ctrl.Trace()).To(HaveLen(2))
		})

		It("records one sample per tick and notifies observers", func() {
			rec := &recorder{}
			ctrl.AddObserver(rec)
			ctrl.Toggle()
			for i := 0; i < 3; i++ {
				ctrl.Tick()
			}

			Expect(ctrl.Trace()).To(HaveLen(3))
			Expect(rec.samples).To(Equal(ctrl.Trace()))
			Expect(rec.times[2]).To(BeNumerically("~", 3.0/60, 1e-12))
			Expect(rec.samples[2].V).To(BeNumerically("~", 4.9*3.0/60, 1e-9))
		})
	})

	Describe("completing a run", func() {
		DescribeTable("every preset reaches the bottom in finite ticks",
			func(i, ticks int) {
				Expect(ctrl.Select(i)).To(Succeed())
				ctrl.Toggle()
				Expect(runToEnd(ctrl)).To(Equal(ticks))

				p := ctrl.Preset()
				Expect(ctrl.Displacement()).To(Equal(p.Length))
				Expect(ctrl.State()).To(Equal(sim.Idle))

				out := ctrl.Outcome()
				Expect(out).NotTo(BeNil())
				Expect(out.Measured).To(BeNumerically("~", p.Length/ctrl.Elapsed(), 1e-12))
				want := sim.Deviation
				if math.Abs(out.Measured-p.ExpSpeed) <= p.ExpSD {
					want = sim.Success
				}
				Expect(out.Verdict).To(Equal(want))
			},
			Entry("h = 0.25", 0, 28),
			Entry("h = 0.50", 1, 39),
			Entry("h = 0.75", 2, 47),
			Entry("h = 1.00", 3, 55),
			Entry("h = 1.25", 4, 61),
		)

		It("clamps the last sample to the plane length", func() {
			ctrl.Toggle()
			runToEnd(ctrl)

			trace := ctrl.Trace()
			Expect(trace[len(trace)-1].S).To(Equal(0.5))
			for i := 1; i < len(trace); i++ {
				Expect(trace[i].S).To(BeNumerically(">=", trace[i-1].S))
			}
		})

		It("computes both fits", func() {
			ctrl.Toggle()
			runToEnd(ctrl)

			fit := ctrl.Fit()
			Expect(fit).NotTo(BeNil())
			Expect(fit.Linear.Slope).To(BeNumerically("~", 1.512, 1e-9))
			Expect(fit.Linear.Intercept).To(BeNumerically("~", 0.488, 1e-9))
			Expect(fit.Linear.R2).To(BeNumerically("~", 0.905659, 1e-6))
			Expect(fit.Power.Coeff).To(BeNumerically("~", 2.0185, 1e-3))
			Expect(fit.Power.Exponent).To(BeNumerically("~", 0.6941, 1e-3))
		})

		It("can be restarted after completion without further motion", func() {
			ctrl.Toggle()
			runToEnd(ctrl)
			elapsed := ctrl.Elapsed()

			ctrl.Toggle()
			Expect(ctrl.Tick()).To(BeTrue())
			Expect(ctrl.Elapsed()).To(Equal(elapsed))
			Expect(ctrl.State()).To(Equal(sim.Idle))
		})
	})

	Describe("Select", func() {
		It("resets a running experiment to idle", func() {
			ctrl.Toggle()
			for i := 0; i < 10; i++ {
				ctrl.Tick()
			}

			Expect(ctrl.Select(3)).To(Succeed())
			Expect(ctrl.State()).To(Equal(sim.Idle))
			Expect(ctrl.Elapsed()).To(BeZero())
			Expect(ctrl.Displacement()).To(BeZero())
			Expect(ctrl.Trace()).To(BeEmpty())
			Expect(ctrl.Preset().Length).To(Equal(2.0))
		})

		It("clears the previous result", func() {
			ctrl.Toggle()
			runToEnd(ctrl)
			Expect(ctrl.Select(1)).To(Succeed())
			Expect(ctrl.Fit()).To(BeNil())
			Expect(ctrl.Outcome()).To(BeNil())
		})

		It("rejects unknown presets", func() {
			Expect(ctrl.Select(5)).To(MatchError(incline.ErrUnknownPreset))
			Expect(ctrl.Select(-1)).To(MatchError(incline.ErrUnknownPreset))
			Expect(ctrl.Index()).To(Equal(0))
		})
	})

	Describe("Reset", func() {
		DescribeTable("returns to idle from any state",
			func(toggles, ticks int) {
				for i := 0; i < toggles; i++ {
					ctrl.Toggle()
					for j := 0; j < ticks; j++ {
						ctrl.Tick()
					}
				}

				ctrl.Reset()
				Expect(ctrl.State()).To(Equal(sim.Idle))
				Expect(ctrl.Elapsed()).To(BeZero())
				Expect(ctrl.Trace()).To(BeEmpty())
				Expect(ctrl.Fit()).To(BeNil())
				Expect(ctrl.Outcome()).To(BeNil())
			},
			Entry("idle", 0, 0),
			Entry("running", 1, 5),
			Entry("paused", 2, 5),
			Entry("completed", 1, 100),
		)

		It("keeps the selected preset", func() {
			Expect(ctrl.Select(2)).To(Succeed())
			ctrl.Reset()
			Expect(ctrl.Index()).To(Equal(2))
		})
	})

	Describe("Snapshot", func() {
		It("copies the trace", func() {
			ctrl.Toggle()
			ctrl.Tick()
			snap := ctrl.Snapshot()
			snap.Trace[0].S = 99

			Expect(ctrl.Trace()[0].S).NotTo(Equal(99.0))
			Expect(snap.State).To(Equal(sim.Running))
			Expect(snap.Preset.Height).To(Equal(0.25))
			Expect(snap.V).To(BeNumerically("~", 4.9/60, 1e-9))
		})
	})

	Describe("Trace", func() {
		It("is not overwritten by the next run", func() {
			Expect(ctrl.Select(4)).To(Succeed())
			ctrl.Toggle()
			ctrl.Tick()
			ctrl.Tick()
			kept := ctrl.Trace()
			first := kept[1]

			ctrl.Reset()
			Expect(ctrl.Select(0)).To(Succeed())
			ctrl.Toggle()
			for i := 0; i < 10; i++ {
				ctrl.Tick()
			}

			Expect(kept).To(HaveLen(2))
			Expect(kept[1]).To(Equal(first))
			Expect(ctrl.Trace()).To(HaveLen(10))
		})
	})
})

var _ = Describe("Judge", func() {
	p := config.Preset{Height: 0.5, Length: 1.0, ExpSpeed: 1.5, ExpSD: 0.1}

	DescribeTable("compares against mean ± sd",
		func(measured float64, want sim.Verdict) {
			Expect(sim.Judge(measured, p)).To(Equal(want))
		},
		Entry("inside", 1.55, sim.Success),
		Entry("lower edge", 1.45, sim.Success),
		Entry("above", 1.65, sim.Deviation),
		Entry("below", 1.3, sim.Deviation),
	)
})

var _ = Describe("State", func() {
	It("names each state", func() {
		Expect(sim.Idle.String()).To(Equal("idle"))
		Expect(sim.Running.String()).To(Equal("running"))
		Expect(sim.Paused.String()).To(Equal("paused"))
	})
})
