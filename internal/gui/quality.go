package gui

import "ytcli/internal/models"

// LabelBest is the default quality choice.
const LabelBest = "Best (Default)"

// QualityLabels are the choices offered in the quality select, best first.
var QualityLabels = []string{LabelBest, "Worst", "1080p", "720p", "480p", "360p"}

// QualityFromLabel maps a display label to the quality value put on the
// request. Height labels pass through unchanged.
func QualityFromLabel(label string) string {
	switch label {
	case "", LabelBest:
		return models.DefaultQuality
	case "Worst":
		return "worst"
	default:
		return label
	}
}
