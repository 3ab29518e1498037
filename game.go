package main

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/prefabs"
	"github.com/milk9111/firefight/sim"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	hudWidth   = 360
)

var weaponKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// Game is a top-down debug viewer: the arena's XZ plane is drawn with -Z up.
type Game struct {
	sim         *sim.Simulation
	weaponsFile string
	watcher     *prefabs.Watcher

	paused bool
	ui     *ebitenui.UI
	face   text.Face
	feed   []string

	scale   float64
	originX float64
	originY float64
}

func NewGame(s *sim.Simulation, weaponsFile string) *Game {
	g := &Game{sim: s, weaponsFile: weaponsFile}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		logger.Fatal("load font", "err", err)
	}
	g.face = &text.GoTextFace{Source: src, Size: 14}

	nav := s.Catalog.Arena.Nav
	extentX := float64(nav.Width) * nav.CellSize
	extentZ := float64(nav.Depth) * nav.CellSize
	g.scale = math.Min(float64(baseWidth-hudWidth-40)/extentX, float64(baseHeight-40)/extentZ)
	g.originX = 20 - nav.Origin.Vec().X()*g.scale
	g.originY = 20 - nav.Origin.Vec().Z()*g.scale

	g.ui = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.drainReloads()
	g.readInput()
	g.sim.Step()
	g.updateFeed()
	return nil
}

const feedLength = 6

func (g *Game) updateFeed() {
	for _, evt := range g.sim.DrainEvents() {
		var line string
		switch evt.Type {
		case combat.EventDeath:
			line = fmt.Sprintf("%.1fs  %v down", g.sim.Now().Seconds(), ecs.Entity(evt.Target))
		case combat.EventDamageApplied:
			line = fmt.Sprintf("%.1fs  %v took %.0f", g.sim.Now().Seconds(), ecs.Entity(evt.Target), evt.Damage)
		default:
			continue
		}
		g.feed = append(g.feed, line)
	}
	if len(g.feed) > feedLength {
		g.feed = g.feed[len(g.feed)-feedLength:]
	}
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		g.sim.SetTrigger(false)
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

func (g *Game) readInput() {
	s := g.sim
	var move mgl64.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		move[2]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		move[2]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		move[0]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		move[0]++
	}
	s.SetMove(move)

	if p := s.Snapshot().Player; p != nil {
		mx, my := ebiten.CursorPosition()
		px, py := g.toScreen(p.Position)
		yaw, _ := common.YawPitchFromDirection(mgl64.Vec3{float64(mx) - px, 0, float64(my) - py})
		s.SetAim(yaw, 0)
	}

	s.SetTrigger(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.RequestReload()
	}
	for slot, key := range weaponKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.SwitchWeapon(slot)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.reloadWeapons()
	}
}

func (g *Game) reloadWeapons() {
	if err := g.sim.ApplyReload(g.weaponsFile); err != nil {
		logger.Warn("reload rejected", "err", err)
	}
}

func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if prefabs.IsWeaponsFile(path) {
				g.reloadWeapons()
			}
		default:
			return
		}
	}
}

func (g *Game) toScreen(p mgl64.Vec3) (float64, float64) {
	return g.originX + p.X()*g.scale, g.originY + p.Z()*g.scale
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	snap := g.sim.Snapshot()

	for _, w := range snap.Walls {
		g.fillBox(screen, w.Min, w.Max, w.Color)
	}
	for _, p := range snap.Props {
		g.fillBox(screen, p.Min, p.Max, p.Color)
	}
	for _, sensor := range snap.Sensors {
		x, y := g.toScreen(sensor.Position)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(sensor.Radius*g.scale), 1, colornames.Teal, true)
	}

	for _, h := range snap.Hostiles {
		g.drawPath(screen, h.Position, h.Path)
		g.drawActor(screen, h.Position, h.Yaw, h.Radius, colornames.Orangered)
	}
	if p := snap.Player; p != nil {
		g.drawActor(screen, p.Position, p.Yaw, g.sim.Catalog.Player.Radius, colornames.Deepskyblue)
	}
	for _, pos := range snap.Projectiles {
		x, y := g.toScreen(pos)
		vector.FillCircle(screen, float32(x), float32(y), 3, colornames.Yellow, true)
	}
	for _, im := range snap.Impacts {
		x, y := g.toScreen(im.Point)
		clr := color.Color(colornames.Lightgrey)
		switch {
		case im.Death:
			clr = colornames.Red
		case im.Struck:
			clr = colornames.Gold
		}
		vector.StrokeLine(screen, float32(x-4), float32(y-4), float32(x+4), float32(y+4), 1.5, clr, true)
		vector.StrokeLine(screen, float32(x-4), float32(y+4), float32(x+4), float32(y-4), 1.5, clr, true)
	}

	g.drawReticle(screen, snap.Player)
	g.drawHUD(screen, snap)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f", ebiten.ActualTPS()), baseWidth-80, baseHeight-16)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) fillBox(screen *ebiten.Image, min, max mgl64.Vec3, clr color.Color) {
	x0, y0 := g.toScreen(min)
	x1, y1 := g.toScreen(max)
	vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), clr, false)
}

func (g *Game) drawActor(screen *ebiten.Image, pos mgl64.Vec3, yaw, radius float64, clr color.Color) {
	x, y := g.toScreen(pos)
	r := math.Max(radius*g.scale, 3)
	vector.FillCircle(screen, float32(x), float32(y), float32(r), clr, true)
	dir := common.ForwardFromYawPitch(yaw, 0)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+dir.X()*r*2), float32(y+dir.Z()*r*2), 2, colornames.White, true)
}

func (g *Game) drawPath(screen *ebiten.Image, from mgl64.Vec3, path []mgl64.Vec3) {
	prevX, prevY := g.toScreen(from)
	for _, p := range path {
		x, y := g.toScreen(p)
		vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(x), float32(y), 1, colornames.Dimgray, false)
		prevX, prevY = x, y
	}
}

func (g *Game) drawReticle(screen *ebiten.Image, p *sim.PlayerView) {
	mx, my := ebiten.CursorPosition()
	x, y := float32(mx), float32(my)
	gap := float32(4)
	if p != nil {
		gap += float32(p.ReticleGap)
	}
	const arm = 8
	clr := colornames.Lime
	vector.StrokeLine(screen, x-gap-arm, y, x-gap, y, 2, clr, false)
	vector.StrokeLine(screen, x+gap, y, x+gap+arm, y, 2, clr, false)
	vector.StrokeLine(screen, x, y-gap-arm, x, y-gap, 2, clr, false)
	vector.StrokeLine(screen, x, y+gap, x, y+gap+arm, 2, clr, false)
}

func (g *Game) drawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	st := g.sim.Stats()
	lines := fmt.Sprintf("t %.2fs\nhostiles %d\nshots %d  hits %d  kills %d\ndamage %.0f",
		snap.Now.Seconds(), len(snap.Hostiles), st.ShotsFired, st.Hits, st.Kills, st.DamageDealt)

	if p := snap.Player; p != nil {
		ammo := fmt.Sprintf("%d / %d", p.Ammo, p.Reserve)
		if p.Unlimited {
			ammo = fmt.Sprintf("%d / inf", p.Ammo)
		}
		lines += fmt.Sprintf("\n\nhealth %.0f\n[%d] %s  %s", p.Health, p.Slot+1, p.Weapon, ammo)
		if p.Reloading {
			lines += fmt.Sprintf("\nreloading %3.0f%%", p.ReloadPercent*100)
		}
	} else {
		lines += "\n\nplayer down"
	}
	if len(g.feed) > 0 {
		lines += "\n\n" + strings.Join(g.feed, "\n")
	}
	lines += "\n\nWASD move  LMB fire  R reload\n1-3 switch  F5 reload defs  Esc menu"

	op := &text.DrawOptions{}
	op.GeoM.Translate(baseWidth-hudWidth+10, 20)
	op.ColorScale.ScaleWithColor(colornames.White)
	op.LineSpacing = 20
	text.Draw(screen, lines, g.face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
