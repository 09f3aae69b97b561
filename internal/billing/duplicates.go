package billing

import (
	"strings"

	"invoicer/internal/models"
)

// IsDuplicateDeployment reports whether details case-insensitively matches
// any deployment in the draft or in history.
func IsDuplicateDeployment(details string, draft *models.Invoice, history []models.Invoice) bool {
	matches := func(entries []models.DeploymentEntry) bool {
		for _, e := range entries {
			if strings.EqualFold(e.Details, details) {
				return true
			}
		}
		return false
	}

	if draft != nil && matches(draft.AppDeployments) {
		return true
	}
	for i := range history {
		if matches(history[i].AppDeployments) {
			return true
		}
	}
	return false
}

// AddDeployment appends entry to draft and reports whether its details were
// already billed. Duplicates are still appended; the flag is only a warning.
func AddDeployment(draft *models.Invoice, entry models.DeploymentEntry, history []models.Invoice) bool {
	duplicate := IsDuplicateDeployment(entry.Details, draft, history)
	draft.AppDeployments = append(draft.AppDeployments, entry)
	return duplicate
}
