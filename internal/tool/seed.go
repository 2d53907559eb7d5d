package tool

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/eyamansouri/matchboard/internal/domain/model"
)

var (
	seedCount int
	seedValue int64
)

// Event mix for generated traffic. Passes dominate, mirroring a real
// match log.
var eventMix = []model.EventType{
	model.Pass, model.Pass, model.Pass, model.Pass, model.Pass,
	model.Tackle, model.Tackle,
	model.Shot, model.Shot,
	model.Goal,
	model.Assist,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate demo events and post them to the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed()
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "events", 50, "number of events to generate")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 1, "RNG seed for reproducible runs")
}

func runSeed() error {
	c := newClient(baseURL)

	env, err := c.getMatch()
	if err != nil {
		return err
	}
	if len(env.Players) == 0 {
		return fmt.Errorf("server has no roster to seed events for")
	}

	// Tag the whole run so generated events are identifiable in the log.
	runID := uuid.New().String()
	rng := rand.New(rand.NewSource(seedValue)) //nolint:gosec // reproducible demo data, not crypto

	for i := 0; i < seedCount; i++ {
		p := env.Players[rng.Intn(len(env.Players))]
		e := model.Event{
			PlayerID: p.ID,
			Minute:   rng.Intn(91),
			Type:     eventMix[rng.Intn(len(eventMix))],
			Meta:     model.Meta{"seedRun": runID},
		}
		switch e.Type {
		case model.Pass:
			target := env.Players[rng.Intn(len(env.Players))]
			e.Meta[model.MetaTargetPlayerID] = target.ID
		case model.Goal:
			if rng.Intn(2) == 0 {
				assister := env.Players[rng.Intn(len(env.Players))]
				if assister.ID != p.ID {
					e.Meta[model.MetaAssistID] = assister.ID
				}
			}
			e.Meta[model.MetaX] = float64(rng.Intn(101))
			e.Meta[model.MetaY] = float64(rng.Intn(101))
		case model.Shot:
			e.Meta[model.MetaX] = float64(rng.Intn(101))
			e.Meta[model.MetaY] = float64(rng.Intn(101))
			e.Meta[model.MetaOnTarget] = rng.Intn(2) == 0
		}

		if _, err := c.postEvent(e); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "posted %d events (run %s)\n", seedCount, runID)
	return nil
}
