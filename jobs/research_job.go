package jobs

import (
	"log"

	"github.com/propsetu/realestate_guru/services"
)

// RefreshResearchNotes re-researches the default market topics through the
// assistant so admin briefing notes stay current. Runs weekly.
func RefreshResearchNotes() {
	log.Println("Running job: RefreshResearchNotes...")
	services.RefreshResearchNotes()
}
