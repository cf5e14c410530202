package system

import (
	"fmt"

	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/levels"
	"github.com/milk9111/puzzlepath/obj"
	"github.com/milk9111/puzzlepath/physics"
)

func origin(e levels.Entity) common.Vec {
	return common.Vec{X: e.X, Y: e.Y}
}

func (s *Simulation) spawnLauncher(e levels.Entity) (*obj.Launcher, error) {
	if err := obj.CheckSize("launcher", e.Width, e.Height, obj.LauncherSize, obj.LauncherSize); err != nil {
		return nil, err
	}
	lc := s.cfg.Launcher
	angle, magnitude := lc.StartAngle, lc.StartMagnitude
	if e.Angle != 0 {
		angle = e.Angle
	}
	if e.Magnitude != 0 {
		magnitude = e.Magnitude
	}
	limits := obj.LauncherLimits{
		MinAngle:     lc.MinAngle,
		MaxAngle:     lc.MaxAngle,
		MinMagnitude: lc.MinMagnitude,
		MaxMagnitude: lc.MaxMagnitude,
		BarrelLength: lc.BarrelLength,
	}
	return obj.NewLauncher(origin(e), e.Asset, limits, angle, magnitude)
}

func (s *Simulation) spawnBall(world *physics.World, launcher *obj.Launcher) (*obj.Ball, error) {
	ball, err := obj.NewBall(s.level.BallAsset)
	if err != nil {
		return nil, err
	}
	if err := ball.SetCenter(launcher.Muzzle()); err != nil {
		return nil, err
	}
	if err := ball.InitBody(world); err != nil {
		return nil, err
	}
	if err := launcher.LoadBall(ball); err != nil {
		return nil, err
	}
	return ball, nil
}

func spawnPlatforms(world *physics.World, entities []levels.Entity) ([]*obj.Platform, error) {
	platforms := make([]*obj.Platform, 0, len(entities))
	for i, e := range entities {
		p, err := obj.NewPlatform(origin(e), common.Vec{X: e.Width, Y: e.Height}, e.Asset)
		if err != nil {
			return nil, fmt.Errorf("platform %d: %w", i, err)
		}
		p.Name = e.Name
		if err := p.InitBody(world); err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}

func spawnDeathTraps(world *physics.World, entities []levels.Entity) ([]*obj.DeathTrap, error) {
	traps := make([]*obj.DeathTrap, 0, len(entities))
	for i, e := range entities {
		if err := obj.CheckSize("death trap", e.Width, e.Height, obj.DeathTrapSize, obj.DeathTrapSize); err != nil {
			return nil, fmt.Errorf("death trap %d: %w", i, err)
		}
		d, err := obj.NewDeathTrap(origin(e), e.Asset)
		if err != nil {
			return nil, fmt.Errorf("death trap %d: %w", i, err)
		}
		if err := d.InitBody(world); err != nil {
			return nil, err
		}
		traps = append(traps, d)
	}
	return traps, nil
}

func spawnTreasures(world *physics.World, entities []levels.Entity) ([]*obj.Treasure, error) {
	treasures := make([]*obj.Treasure, 0, len(entities))
	for i, e := range entities {
		if err := obj.CheckSize("treasure", e.Width, e.Height, obj.TreasureSize, obj.TreasureSize); err != nil {
			return nil, fmt.Errorf("treasure %d: %w", i, err)
		}
		t, err := obj.NewTreasure(origin(e), e.Asset)
		if err != nil {
			return nil, fmt.Errorf("treasure %d: %w", i, err)
		}
		if err := t.InitBody(world); err != nil {
			return nil, err
		}
		treasures = append(treasures, t)
	}
	return treasures, nil
}

func spawnGoal(world *physics.World, e levels.Entity) (*obj.Goal, error) {
	if err := obj.CheckSize("goal", e.Width, e.Height, obj.GoalSize, obj.GoalSize); err != nil {
		return nil, err
	}
	g, err := obj.NewGoal(origin(e), e.Asset)
	if err != nil {
		return nil, err
	}
	if err := g.InitBody(world); err != nil {
		return nil, err
	}
	return g, nil
}
