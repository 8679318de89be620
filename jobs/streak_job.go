package jobs

import (
	"log"

	"github.com/propsetu/realestate_guru/services"
)

// ResetIdleStreaks zeroes the streak of every learner with no activity since
// yesterday. Runs daily just after midnight.
func ResetIdleStreaks() {
	log.Println("Running job: ResetIdleStreaks...")
	services.ResetIdleStreaks()
}
