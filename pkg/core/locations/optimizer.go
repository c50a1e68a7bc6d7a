package locations

import (
	"math"
	"slices"
	"strings"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// Options controls clustering and ordering
type Options struct {
	// ScenesPerDay is the baseline number of scenes shot per day at one location
	ScenesPerDay int `yaml:"scenesPerDay"`

	// ComplexityDayFactor scales a cluster's mean complexity into buffer days
	ComplexityDayFactor float64 `yaml:"complexityDayFactor"`

	// TwoOpt runs a 2-opt improvement pass over the greedy route
	TwoOpt bool `yaml:"twoOpt"`
}

// DefaultOptions returns three scenes a day, a 0.2 complexity factor and plain greedy ordering
func DefaultOptions() Options {
	return Options{
		ScenesPerDay:        3,
		ComplexityDayFactor: 0.2,
	}
}

func (o Options) Validate() error {
	if o.ScenesPerDay < 1 {
		return &model.ConfigurationError{Field: "locations.scenesPerDay", Reason: "must be at least 1"}
	}
	if o.ComplexityDayFactor < 0 {
		return &model.ConfigurationError{Field: "locations.complexityDayFactor", Reason: "must not be negative"}
	}
	return nil
}

// Result is the ordered set of location clusters
type Result struct {
	// Clusters in visiting order
	Clusters []model.LocationCluster

	// RouteCost is the summed travel cost between consecutive clusters
	RouteCost float64
}

// Optimize groups scenes into location clusters and orders them for shooting.
//
// Ordering is a greedy nearest-neighbour walk: start at the cluster with the most
// scenes, then repeatedly move to the cheapest unvisited cluster. This is an O(n²)
// approximation and is not guaranteed to find the cheapest route; with TwoOpt set
// the route is then improved by segment reversal. Any non-empty scene set yields a
// complete ordering, so there is no failure case.
func Optimize(estimates []model.SceneEstimate, cost TravelCost, opts Options) Result {
	clusters := BuildClusters(estimates, opts)
	ordered := OrderClusters(clusters, cost)
	if opts.TwoOpt {
		ordered = improveTwoOpt(ordered, cost)
	}
	return Result{
		Clusters:  ordered,
		RouteCost: RouteCost(ordered, cost),
	}
}

// BuildClusters groups scenes by location name and type and estimates the days
// each cluster needs:
//
//	estimated_days = ceil(scenes / scenesPerDay) + round(complexity / scenes × factor)
//
// Clusters are returned sorted by key.
func BuildClusters(estimates []model.SceneEstimate, opts Options) []model.LocationCluster {
	byKey := make(map[model.LocationKey]*model.LocationCluster)
	for _, estimate := range estimates {
		key := estimate.Scene.LocationKey()
		cluster, ok := byKey[key]
		if !ok {
			cluster = &model.LocationCluster{Key: key}
			byKey[key] = cluster
		}
		cluster.SceneNumbers = append(cluster.SceneNumbers, estimate.Scene.SceneNumber)
		cluster.ComplexityScore += estimate.Complexity.Total
	}

	clusters := make([]model.LocationCluster, 0, len(byKey))
	for _, cluster := range byKey {
		slices.SortFunc(cluster.SceneNumbers, model.CompareSceneNumbers)
		cluster.ComplexityScore = math.Round(cluster.ComplexityScore*1e4) / 1e4
		cluster.EstimatedDays = EstimateDays(cluster.SceneCount(), cluster.ComplexityScore, opts)
		clusters = append(clusters, *cluster)
	}
	slices.SortFunc(clusters, func(a, b model.LocationCluster) int {
		return compareKeys(a.Key, b.Key)
	})

	return clusters
}

// EstimateDays returns the shoot days needed for a cluster
func EstimateDays(sceneCount int, complexityScore float64, opts Options) int {
	if sceneCount == 0 {
		return 0
	}
	scenesPerDay := max(opts.ScenesPerDay, 1)
	baseDays := (sceneCount + scenesPerDay - 1) / scenesPerDay
	bufferDays := int(math.Round(complexityScore / float64(sceneCount) * opts.ComplexityDayFactor))
	return baseDays + bufferDays
}

// OrderClusters returns the clusters in greedy nearest-neighbour order.
//
// Start: most scenes, ties broken by key. Next: lowest travel cost from the
// current cluster, ties broken by most scenes and then by key, so the order is
// fully determined by the input.
func OrderClusters(clusters []model.LocationCluster, cost TravelCost) []model.LocationCluster {
	if len(clusters) == 0 {
		return []model.LocationCluster{}
	}

	remaining := slices.Clone(clusters)
	startIdx := 0
	for i := 1; i < len(remaining); i++ {
		if preferCluster(remaining[i], remaining[startIdx]) {
			startIdx = i
		}
	}

	ordered := make([]model.LocationCluster, 0, len(clusters))
	current := remaining[startIdx]
	ordered = append(ordered, current)
	remaining = slices.Delete(remaining, startIdx, startIdx+1)

	for len(remaining) > 0 {
		bestIdx := 0
		bestCost := cost.Cost(current.Key, remaining[0].Key)
		for i := 1; i < len(remaining); i++ {
			c := cost.Cost(current.Key, remaining[i].Key)
			if c < bestCost || (c == bestCost && preferCluster(remaining[i], remaining[bestIdx])) {
				bestIdx = i
				bestCost = c
			}
		}

		current = remaining[bestIdx]
		ordered = append(ordered, current)
		remaining = slices.Delete(remaining, bestIdx, bestIdx+1)
	}

	return ordered
}

// RouteCost sums the travel cost between consecutive clusters
func RouteCost(ordered []model.LocationCluster, cost TravelCost) float64 {
	total := 0.0
	for i := 1; i < len(ordered); i++ {
		total += cost.Cost(ordered[i-1].Key, ordered[i].Key)
	}
	return total
}

// improveTwoOpt reverses route segments while doing so lowers the total cost.
// The starting cluster stays first and the route is open (no return leg).
func improveTwoOpt(ordered []model.LocationCluster, cost TravelCost) []model.LocationCluster {
	const epsilon = 1e-9

	route := slices.Clone(ordered)
	n := len(route)
	for improved := true; improved; {
		improved = false
		for i := 1; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				before := cost.Cost(route[i-1].Key, route[i].Key)
				after := cost.Cost(route[i-1].Key, route[j].Key)
				if j+1 < n {
					before += cost.Cost(route[j].Key, route[j+1].Key)
					after += cost.Cost(route[i].Key, route[j+1].Key)
				}
				if after < before-epsilon {
					slices.Reverse(route[i : j+1])
					improved = true
				}
			}
		}
	}
	return route
}

// preferCluster reports whether a should be visited before b when costs tie
func preferCluster(a, b model.LocationCluster) bool {
	if a.SceneCount() != b.SceneCount() {
		return a.SceneCount() > b.SceneCount()
	}
	return compareKeys(a.Key, b.Key) < 0
}

func compareKeys(a, b model.LocationKey) int {
	return strings.Compare(a.String(), b.String())
}
