package probability

import (
	"strings"
)

// validateItems checks that items can serve as distinct, non-empty combination labels
func validateItems(items []string) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item == "" {
			return invalidArgument("Combinations", "empty item")
		}
		if strings.Contains(item, Separator) {
			return invalidArgument("Combinations", "item %q contains separator %q", item, Separator)
		}
		if _, dup := seen[item]; dup {
			return invalidArgument("Combinations", "duplicate item %q", item)
		}
		seen[item] = struct{}{}
	}
	return nil
}

// ValidateTrials validates the trial count of a simulation
func ValidateTrials(trials int) error {
	if trials <= 0 || trials > MaxSimulationTrials {
		return invalidArgument("Simulate", "trials must be between 1 and %d, got %d", MaxSimulationTrials, trials)
	}
	return nil
}

// calculateOptimalBatchSize determines how many trials go into one batch of a simulation
func calculateOptimalBatchSize(totalTrials int) int {
	// Small runs still need a few batches for a spread estimate,
	// large runs are capped at a fixed batch size.
	if totalTrials <= 10 {
		return 1
	} else if totalTrials <= 1000 {
		return totalTrials / 10
	} else if totalTrials <= 100_000 {
		return 1000
	} else {
		return 10_000
	}
}
