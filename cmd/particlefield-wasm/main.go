//go:build js && wasm

package main

import (
	"math/rand/v2"
	"syscall/js"
	"time"

	"github.com/san-kum/particlefield/internal/config"
	"github.com/san-kum/particlefield/internal/particle"
	"github.com/san-kum/particlefield/internal/webcanvas"
)

// main mounts the hero field on #hero-particles and a card field on every
// canvas.card-particles, sized to the canvas's parent element. Calling the
// global particlefieldStop() tears every host down and lets main return.
func main() {
	cfg := config.DefaultConfig()
	seed := uint64(time.Now().UnixNano())
	doc := js.Global().Get("document")

	var hosts []*webcanvas.Host

	heroCfg := config.HeroForWidth(js.Global().Get("innerWidth").Float())
	if canvas := doc.Call("getElementById", "hero-particles"); !canvas.IsNull() {
		field := particle.NewField(heroCfg.Particle(), rand.New(rand.NewPCG(seed, 0)))
		hosts = append(hosts, webcanvas.NewHost(canvas, js.Undefined(), field, nil))
	}

	cards := doc.Call("querySelectorAll", "canvas.card-particles")
	for i := 0; i < cards.Length(); i++ {
		canvas := cards.Index(i)
		fc := *config.GetPreset("card")
		if i < len(cfg.Cards) {
			fc = cfg.Cards[i]
		}
		field := particle.NewField(fc.Particle(), rand.New(rand.NewPCG(seed, uint64(i+1))))
		hosts = append(hosts, webcanvas.NewHost(canvas, canvas.Get("parentElement"), field, nil))
	}

	for _, h := range hosts {
		h.Start()
	}

	done := make(chan struct{})
	var stop js.Func
	stop = js.FuncOf(func(js.Value, []js.Value) any {
		for _, h := range hosts {
			h.Close()
		}
		js.Global().Delete("particlefieldStop")
		stop.Release()
		close(done)
		return nil
	})
	js.Global().Set("particlefieldStop", stop)

	<-done
}
