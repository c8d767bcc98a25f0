// Package searchparams holds the caller-side search parameters. Exactly one
// SearchMode drives a request; the remaining types refine what the server
// does with the matches.
package searchparams

// SearchMode is the closed set of search variants. Exactly one mode is set
// per request; the zero request (no mode) is a plain fetch-objects scan.
type SearchMode interface {
	searchMode()
}

type NearVector struct {
	Vector        []float32 `json:"vector"`
	Certainty     *float64  `json:"certainty"`
	Distance      *float64  `json:"distance"`
	TargetVectors []string  `json:"targetVectors"`
}

func (NearVector) searchMode() {}

type NearObject struct {
	ID            string   `json:"id"`
	Certainty     *float64 `json:"certainty"`
	Distance      *float64 `json:"distance"`
	TargetVectors []string `json:"targetVectors"`
}

func (NearObject) searchMode() {}

// Move biases a NearText search towards or away from additional concepts
// or the vectors of existing objects.
type Move struct {
	Force    float32  `json:"force"`
	Concepts []string `json:"concepts"`
	Objects  []string `json:"objects"`
}

type NearText struct {
	Query         []string `json:"query"`
	Certainty     *float64 `json:"certainty"`
	Distance      *float64 `json:"distance"`
	MoveTo        *Move    `json:"moveTo"`
	MoveAwayFrom  *Move    `json:"moveAwayFrom"`
	TargetVectors []string `json:"targetVectors"`
}

func (NearText) searchMode() {}

// MediaKind selects which near-media search a NearMedia request becomes.
type MediaKind int

const (
	MediaImage MediaKind = iota + 1
	MediaAudio
	MediaVideo
	MediaDepth
	MediaThermal
	MediaIMU
)

func (k MediaKind) String() string {
	switch k {
	case MediaImage:
		return "image"
	case MediaAudio:
		return "audio"
	case MediaVideo:
		return "video"
	case MediaDepth:
		return "depth"
	case MediaThermal:
		return "thermal"
	case MediaIMU:
		return "imu"
	default:
		return "unknown"
	}
}

// NearMedia searches by a base64-encoded media blob of the given kind.
type NearMedia struct {
	Kind          MediaKind `json:"kind"`
	Media         string    `json:"media"`
	Certainty     *float64  `json:"certainty"`
	Distance      *float64  `json:"distance"`
	TargetVectors []string  `json:"targetVectors"`
}

func (NearMedia) searchMode() {}

type FusionType int

const (
	// FusionDefault leaves the choice to the server.
	FusionDefault FusionType = iota
	FusionRanked
	FusionRelativeScore
)

// Hybrid combines a keyword search with a vector search. Alpha weighs the
// vector part; nil means the server default. At most one of Vector,
// NearText and NearVector may be set as the vector part.
type Hybrid struct {
	Query         string      `json:"query"`
	Properties    []string    `json:"properties"`
	Alpha         *float64    `json:"alpha"`
	Vector        []float32   `json:"vector"`
	FusionType    FusionType  `json:"fusionType"`
	NearText      *NearText   `json:"nearText"`
	NearVector    *NearVector `json:"nearVector"`
	TargetVectors []string    `json:"targetVectors"`
}

func (Hybrid) searchMode() {}

type BM25 struct {
	Query      string   `json:"query"`
	Properties []string `json:"properties"`
}

func (BM25) searchMode() {}

// GroupBy buckets results by a top-level property. Matches beyond
// ObjectsPerGroup within a bucket are dropped.
type GroupBy struct {
	Property        string `json:"property"`
	NumberOfGroups  int    `json:"numberOfGroups"`
	ObjectsPerGroup int    `json:"objectsPerGroup"`
}

// Rerank re-orders the result window with the configured reranker module.
// Query overrides the search query as the ranking criterion when set.
type Rerank struct {
	Property string  `json:"property"`
	Query    *string `json:"query"`
}

// GenerativeSearch runs the configured generative module over the results,
// per object (SinglePrompt) or over all of them at once (GroupedTask).
type GenerativeSearch struct {
	SinglePrompt      string   `json:"singlePrompt"`
	GroupedTask       string   `json:"groupedTask"`
	GroupedProperties []string `json:"groupedProperties"`
}
