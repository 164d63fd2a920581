package hunter

import (
	"sort"
	"strings"
)

// knownBrands are matched against the lowercased title, longest name
// first so "santa cruz" wins over any shorter overlap.
var knownBrands = []string{
	"trek", "giant", "specialized", "cannondale", "scott", "merida", "cube",
	"canyon", "bianchi", "orbea", "mondraker", "commencal", "santa cruz",
	"yt", "yt industries", "propain", "nukeproof", "pivot", "norco", "kona",
	"marin", "ibis", "intense", "transition", "rocky mountain", "lapierre",
	"rose", "vitus", "radon", "polygon", "ghost", "bmc", "bh", "ns bikes",
	"devinci", "ragley", "haibike", "focus",
}

// brandCasing fixes title-casing for brands that are really initialisms.
var brandCasing = map[string]string{
	"Yt":            "YT",
	"Yt Industries": "YT",
	"Bh":            "BH",
	"Bmc":           "BMC",
	"Ns Bikes":      "NS Bikes",
}

// genericTitleWords never count as a brand candidate.
var genericTitleWords = map[string]bool{
	"fahrrad": true, "bike": true, "mountainbike": true, "downhillbike": true,
	"rennrad": true, "e-bike": true, "ebike": true,
}

// categoryBuckets map title keywords to a coarse bike category, checked in
// order. E-bikes are checked before MTB so "E-MTB" lands in emtb.
var categoryBuckets = []struct {
	category string
	keywords []string
}{
	{"emtb", []string{"e-bike", "ebike", "e mtb", "elektro", "electric"}},
	{"mtb", []string{"mountain", "mtb", "enduro", "downhill"}},
	{"road", []string{"road", "rennrad", "racing"}},
	{"bmx", []string{"bmx"}},
	{"kids", []string{"kinder", "kids", "child"}},
}

// BikeInfo is what can be guessed about the bike from the title alone.
type BikeInfo struct {
	Brand    string
	Model    string
	Category string
}

// ParseTitle derives brand, model, and category from a listing title.
// Unknown brands fall back to the first non-generic title word; the model
// is the title with the brand and generic lead words stripped.
func ParseTitle(title string) BikeInfo {
	lower := strings.ToLower(title)

	category := "city"
	for _, bucket := range categoryBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				category = bucket.category
				break
			}
		}
		if category != "city" {
			break
		}
	}

	brands := make([]string, len(knownBrands))
	copy(brands, knownBrands)
	sort.Slice(brands, func(i, j int) bool { return len(brands[i]) > len(brands[j]) })

	brand := ""
	matched := ""
	for _, candidate := range brands {
		if strings.Contains(lower, candidate) {
			matched = candidate
			brand = titleCase(candidate)
			if fixed, ok := brandCasing[brand]; ok {
				brand = fixed
			}
			break
		}
	}

	if brand == "" {
		for _, word := range strings.Fields(title) {
			if len(word) > 1 && !genericTitleWords[strings.ToLower(word)] {
				brand = word
				matched = strings.ToLower(word)
				break
			}
		}
		if brand == "" {
			brand = "Unknown"
		}
	}

	model := title
	if matched != "" {
		if idx := strings.Index(lower, matched); idx >= 0 {
			model = title[:idx] + title[idx+len(matched):]
		}
	}
	model = strings.TrimSpace(model)
	model = strings.TrimLeft(model, " :-–")
	for _, generic := range []string{"downhillbike", "mountainbike", "rennrad", "fahrrad", "e-bike", "ebike", "bike"} {
		if strings.HasPrefix(strings.ToLower(model), generic) {
			model = strings.TrimSpace(model[len(generic):])
			break
		}
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = "Model"
	}

	return BikeInfo{Brand: brand, Model: model, Category: category}
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
