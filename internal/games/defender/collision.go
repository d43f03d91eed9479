package defender

// resolveCollisions runs the ordered collision stages and compacts every
// list at the end. Marks are append-only: an entity marked in one stage is
// skipped by all later ones.
func (g *Game) resolveCollisions() {
	g.resolvePlayerBullets()
	g.resolveBomb()
	g.resolveFreeze()
	g.resolveEnemyBullets()
	g.resolveEnemyContact()
	g.resolvePowerUps()
	g.resolveFiles()
	g.compact()
}

// resolvePlayerBullets damages every enemy a bullet overlaps. A bullet is
// not consumed by its first hit, so one shot can take out a whole cluster.
func (g *Game) resolvePlayerBullets() {
	for _, b := range g.playerBullets {
		if b.Deleted() {
			continue
		}
		hit := false
		for _, e := range g.enemies {
			if e.Deleted() || !overlaps(b, e) {
				continue
			}
			hit = true
			g.sound.PlayCue(CueEnemyHit)
			if e.Hit(1) {
				g.score += e.ScoreValue
				g.rollDrop(e)
			}
		}
		if hit {
			b.markDeleted()
		}
	}
}

// rollDrop may leave a power-up of a uniformly chosen kind where e died.
func (g *Game) rollDrop(e *Enemy) {
	if g.rng.Float64() >= g.cfg.PowerUps.DropChance {
		return
	}
	kind := PowerUpKind(pick(g.rng, int(PowerUpKindCount)))
	cx, cy := e.Rect().Center()
	g.powerUps = append(g.powerUps, newPowerUp(&g.cfg, g.field, cx, cy, kind))
}

func (g *Game) resolveBomb() {
	if !g.player.BombPending {
		return
	}
	g.player.BombPending = false
	for _, e := range g.enemies {
		if e.Deleted() {
			continue
		}
		e.markDeleted()
		g.score += e.ScoreValue
	}
	for _, b := range g.enemyBullets {
		b.markDeleted()
	}
	g.sound.PlayCue(CueBomb)
}

func (g *Game) resolveFreeze() {
	if !g.player.FreezePending {
		return
	}
	g.player.FreezePending = false
	for _, e := range g.enemies {
		if !e.Deleted() {
			e.Freeze()
		}
	}
	for _, b := range g.enemyBullets {
		if !b.Deleted() {
			b.Freeze()
		}
	}
}

// damagePlayer applies one point of damage, or plays the block cue when the
// shield is up.
func (g *Game) damagePlayer() {
	if g.player.Shielded {
		g.sound.PlayCue(CueGlitch)
		return
	}
	g.player.Hit(1)
	g.sound.PlayCue(CuePlayerHit)
}

func (g *Game) resolveEnemyBullets() {
	for _, b := range g.enemyBullets {
		if b.Deleted() || !overlaps(b, g.player) {
			continue
		}
		g.damagePlayer()
		b.markDeleted()
	}
}

// resolveEnemyContact handles enemies ramming the player. The rammer is
// destroyed and still scores.
func (g *Game) resolveEnemyContact() {
	for _, e := range g.enemies {
		if e.Deleted() || !overlaps(e, g.player) {
			continue
		}
		g.damagePlayer()
		e.markDeleted()
		g.score += e.ScoreValue
	}
}

func (g *Game) resolvePowerUps() {
	for _, p := range g.powerUps {
		if p.Deleted() || !overlaps(p, g.player) {
			continue
		}
		p.ApplyEffect(g.player)
		p.markDeleted()
	}
}

func (g *Game) resolveFiles() {
	for _, f := range g.files {
		if f.Deleted() || !overlaps(f, g.player) {
			continue
		}
		f.markDeleted()
		g.filesCollected++
		g.sound.PlayCue(CueFilePickup)
		g.sound.SetTempo(g.tempo())
	}
}

// tempo is the music speed multiplier for the current file count.
func (g *Game) tempo() float64 {
	return min(1+float64(g.filesCollected)*g.cfg.Music.TempoStep, g.cfg.Music.TempoMax)
}

func (g *Game) compact() {
	g.playerBullets = compact(g.playerBullets)
	g.enemyBullets = compact(g.enemyBullets)
	g.enemies = compact(g.enemies)
	g.powerUps = compact(g.powerUps)
	g.files = compact(g.files)
}
