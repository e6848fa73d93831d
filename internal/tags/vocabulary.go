package tags

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Vocabulary is the configuration a Normalizer is built from.
//
//	synonyms: raw tag -> canonical tag
//	aliases:  canonical tag -> related canonical tags (one level, not transitive)
type Vocabulary struct {
	Synonyms map[string]string   `koanf:"synonyms"`
	Aliases  map[string][]string `koanf:"aliases"`
}

/********** built-in vocabulary **********/

var defaultSynonyms = map[string]string{
	// sights
	"museums": "museum", "museo": "museum", "art gallery": "art_gallery", "gallery": "art_gallery",
	"art-gallery": "art_gallery", "historical": "heritage", "historic": "heritage", "history": "heritage",
	"cultural": "culture", "church": "church", "churches": "church",
	// water
	"beaches": "beach", "seaside": "beach", "shore": "beach", "islands": "island", "island hopping": "island",
	"waterfalls": "waterfall", "falls": "waterfall", "lakes": "lake", "snorkel": "snorkeling", "dive": "diving",
	// land
	"mountains": "mountain", "highlands": "mountain", "hike": "hiking", "hikes": "hiking", "trek": "trekking",
	"outdoors": "nature", "woods": "forest", "camp": "camping", "zip line": "zipline", "zip-line": "zipline",
	"view": "scenic", "views": "scenic", "viewpoint": "scenic", "parks": "park",
	// food & shopping
	"food": "foodie", "food trip": "foodie", "dining": "foodie", "cuisine": "foodie", "restaurants": "restaurant",
	"shop": "shopping", "mall": "shopping", "markets": "market",
	// travellers & lodging
	"kids": "family_friendly", "kid friendly": "family_friendly", "family": "family_friendly",
	"family-friendly": "family_friendly", "romance": "romantic", "honeymoon": "romantic",
	"eco": "eco_resort", "eco resort": "eco_resort", "eco-resort": "eco_resort", "hotels": "hotel",
	"resorts": "resort", "b&b": "inn", "bed and breakfast": "inn", "hostels": "hostel",
}

var defaultAliases = map[string][]string{
	"nature":          {"scenic", "hiking", "trekking", "waterfall", "lake", "forest", "mountain", "park"},
	"beach":           {"island", "snorkeling", "diving", "swimming"},
	"mountain":        {"hiking", "trekking", "scenic", "camping"},
	"adventure":       {"zipline", "hiking", "trekking", "diving", "surfing", "camping"},
	"culture":         {"heritage", "museum", "art_gallery", "church", "festival"},
	"heritage":        {"museum", "church", "culture"},
	"foodie":          {"restaurant", "cafe", "street_food", "local_cuisine"},
	"shopping":        {"market", "souvenir"},
	"relaxation":      {"spa", "beach", "resort"},
	"romantic":        {"scenic", "spa", "sunset"},
	"family_friendly": {"park", "zoo", "theme_park", "swimming"},
	"nightlife":       {"bar", "club", "live_music"},
}

// DefaultVocabulary returns a copy of the built-in tables.
func DefaultVocabulary() Vocabulary {
	v := Vocabulary{Synonyms: make(map[string]string, len(defaultSynonyms)), Aliases: make(map[string][]string, len(defaultAliases))}
	for k, s := range defaultSynonyms {
		v.Synonyms[k] = s
	}
	for k, as := range defaultAliases {
		v.Aliases[k] = append([]string(nil), as...)
	}
	return v
}

// Merge returns a new vocabulary with o's entries layered over v's.
func (v Vocabulary) Merge(o Vocabulary) Vocabulary {
	out := Vocabulary{Synonyms: map[string]string{}, Aliases: map[string][]string{}}
	for _, src := range []Vocabulary{v, o} {
		for k, s := range src.Synonyms {
			out.Synonyms[k] = s
		}
		for k, as := range src.Aliases {
			out.Aliases[k] = append([]string(nil), as...)
		}
	}
	return out
}

// LoadVocabulary reads a YAML vocabulary file (same shape as Vocabulary).
func LoadVocabulary(path string) (Vocabulary, error) {
	// "::" keeps tags containing dots from being split into nested keys.
	k := koanf.New("::")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Vocabulary{}, fmt.Errorf("load tag vocabulary %s: %w", path, err)
	}
	var v Vocabulary
	if err := k.Unmarshal("", &v); err != nil {
		return Vocabulary{}, fmt.Errorf("decode tag vocabulary %s: %w", path, err)
	}
	return v, nil
}
