package config_test

import (
	"image/color"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/particlefield/internal/config"
)

var _ = Describe("Config", func() {
	Describe("DefaultConfig", func() {
		It("is valid", func() {
			cfg := config.DefaultConfig()
			Expect(cfg.Validate()).To(Succeed())
			Expect(cfg.FPS).To(Equal(config.DefaultFPS))
			Expect(cfg.Hero.Count).To(Equal(10))
			Expect(cfg.Hero.BounceCount).To(Equal(3))
			Expect(cfg.Cards).To(HaveLen(3))
		})
	})

	Describe("Presets", func() {
		It("lists presets in order", func() {
			Expect(config.ListPresets()).To(Equal([]string{"card", "hero", "hero-mobile"}))
		})

		It("returns nil for unknown presets", func() {
			Expect(config.GetPreset("nonexistent")).To(BeNil())
		})

		It("returns independent copies", func() {
			p := config.GetPreset("card")
			p.Count = 99
			p.Palette[0] = "#000000"

			again := config.GetPreset("card")
			Expect(again.Count).To(Equal(3))
			Expect(again.Palette[0]).To(Equal("rgba(96, 165, 250, 0.2)"))
		})

		DescribeTable("hero preset by viewport width",
			func(width float64, count, bounce int) {
				f := config.HeroForWidth(width)
				Expect(f.Count).To(Equal(count))
				Expect(f.BounceCount).To(Equal(bounce))
			},
			Entry("phone", 390.0, 5, 2),
			Entry("just below breakpoint", 767.0, 5, 2),
			Entry("at breakpoint", 768.0, 10, 3),
			Entry("desktop", 1440.0, 10, 3),
		)
	})

	Describe("Validate", func() {
		var f config.FieldConfig

		BeforeEach(func() {
			f = *config.GetPreset("hero")
		})

		It("accepts presets", func() {
			for _, name := range config.ListPresets() {
				Expect(config.GetPreset(name).Validate()).To(Succeed(), name)
			}
		})

		It("rejects a bounce count above the particle count", func() {
			f.BounceCount = 11
			Expect(f.Validate()).To(MatchError(config.ErrBounceCount))
		})

		It("rejects an inverted size range", func() {
			f.MinSize, f.MaxSize = 6, 3
			Expect(f.Validate()).To(MatchError(config.ErrSizeRange))
		})

		It("reports every problem at once", func() {
			f.Count = -1
			f.MaxSpeed = -2
			f.Palette = nil
			err := f.Validate()
			Expect(err).To(MatchError(config.ErrInvalidCount))
			Expect(err).To(MatchError(config.ErrSpeed))
			Expect(err).To(MatchError(config.ErrPalette))
		})

		It("rejects unparsable colours", func() {
			f.Palette = []string{"rgba(1, 2, 3, 0.5)", "not-a-colour"}
			Expect(f.Validate()).To(MatchError(config.ErrColor))
		})

		It("names the failing card", func() {
			cfg := config.DefaultConfig()
			cfg.FPS = 0
			cfg.Cards[1].BounceCount = 9
			err := cfg.Validate()
			Expect(err).To(MatchError(config.ErrInvalidFPS))
			Expect(err).To(MatchError(config.ErrBounceCount))
			Expect(err.Error()).To(ContainSubstring("cards[1]"))
		})
	})

	Describe("Particle", func() {
		It("converts palette strings to colours", func() {
			pc := config.GetPreset("hero").Particle()
			Expect(pc.Count).To(Equal(10))
			Expect(pc.BounceCount).To(Equal(3))
			Expect(pc.MaxSpeed).To(Equal(1.0))
			Expect(pc.Palette).To(Equal([]color.NRGBA{
				{R: 96, G: 165, B: 250, A: 102},
				{R: 147, G: 51, B: 234, A: 102},
				{R: 236, G: 72, B: 153, A: 102},
			}))
		})
	})

	Describe("Load and Save", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		It("round trips a config", func() {
			path := filepath.Join(dir, "scene.yaml")
			cfg := config.DefaultConfig()
			cfg.Seed = 42
			cfg.Theme = "mono"
			Expect(config.Save(path, cfg)).To(Succeed())

			loaded, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(cfg))
		})

		It("fills missing keys from defaults", func() {
			path := filepath.Join(dir, "partial.yaml")
			Expect(os.WriteFile(path, []byte("fps: 30\nhero:\n  count: 4\n  bounce_count: 1\n"), 0644)).To(Succeed())

			cfg, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.FPS).To(Equal(30))
			Expect(cfg.Hero.Count).To(Equal(4))
			Expect(cfg.Hero.MaxSpeed).To(Equal(1.0))
			Expect(cfg.Hero.Palette).To(HaveLen(3))
		})

		It("rejects invalid files", func() {
			path := filepath.Join(dir, "bad.yaml")
			Expect(os.WriteFile(path, []byte("fps: -1\n"), 0644)).To(Succeed())

			_, err := config.Load(path)
			Expect(err).To(MatchError(config.ErrInvalidFPS))
		})

		It("reports malformed yaml", func() {
			path := filepath.Join(dir, "broken.yaml")
			Expect(os.WriteFile(path, []byte("fps: [\n"), 0644)).To(Succeed())

			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("config: parse"))
		})

		It("fails on a missing file", func() {
			_, err := config.Load(filepath.Join(dir, "missing.yaml"))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})
	})
})

var _ = Describe("Colours", func() {
	DescribeTable("ParseRGBA",
		func(in string, want color.NRGBA) {
			got, err := config.ParseRGBA(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("rgba", "rgba(96, 165, 250, 0.4)", color.NRGBA{R: 96, G: 165, B: 250, A: 102}),
		Entry("rgba without spaces", "rgba(236,72,153,0.2)", color.NRGBA{R: 236, G: 72, B: 153, A: 51}),
		Entry("rgb", "rgb(1, 2, 3)", color.NRGBA{R: 1, G: 2, B: 3, A: 255}),
		Entry("hex", "#60a5fa", color.NRGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff}),
		Entry("hex with alpha", "#9333EA66", color.NRGBA{R: 0x93, G: 0x33, B: 0xea, A: 0x66}),
		Entry("short hex", "#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		Entry("name", "red", color.NRGBA{R: 255, A: 255}),
	)

	DescribeTable("ParseRGBA rejects",
		func(in string) {
			_, err := config.ParseRGBA(in)
			Expect(err).To(MatchError(config.ErrColor))
		},
		Entry("unknown name", "sparkle"),
		Entry("missing channels", "rgb(1, 2)"),
		Entry("non-numeric channel", "rgba(a, b, c, 1)"),
		Entry("bad hex", "#zzzzzz"),
		Entry("empty", ""),
	)

	It("formats colours ParseRGBA can read back", func() {
		for _, c := range []color.NRGBA{
			{R: 96, G: 165, B: 250, A: 102},
			{R: 0, G: 0, B: 0, A: 255},
			{R: 10, G: 20, B: 30, A: 100},
		} {
			back, err := config.ParseRGBA(config.FormatRGBA(c))
			Expect(err).NotTo(HaveOccurred())
			Expect(back).To(Equal(c))
		}
	})

	It("formats the hero palette exactly", func() {
		Expect(config.FormatRGBA(color.NRGBA{R: 96, G: 165, B: 250, A: 102})).To(Equal("rgba(96, 165, 250, 0.4)"))
	})
})
