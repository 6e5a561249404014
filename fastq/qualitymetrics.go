package fastq

import (
	"fmt"
	"math"
)

// QualityMetric represents different methods for summarizing read quality
type QualityMetric int

const (
	AvgPhred QualityMetric = iota
	MaxEE
	Meep
	LQCount
	LQPercent
)

// Default quality threshold for the lqcount and lqpercent metrics
const DEFAULT_MIN_PHRED = 15

func (m QualityMetric) String() string {
	switch m {
	case AvgPhred:
		return "avgphred"
	case MaxEE:
		return "maxee"
	case Meep:
		return "meep"
	case LQCount:
		return "lqcount"
	case LQPercent:
		return "lqpercent"
	default:
		return "unknown"
	}
}

// ParseQualityMetric maps a metric name to its QualityMetric
func ParseQualityMetric(name string) (QualityMetric, error) {
	switch name {
	case "avgphred":
		return AvgPhred, nil
	case "maxee":
		return MaxEE, nil
	case "meep":
		return Meep, nil
	case "lqcount":
		return LQCount, nil
	case "lqpercent":
		return LQPercent, nil
	default:
		return 0, fmt.Errorf("invalid quality metric: %s", name)
	}
}

// Error probabilities for the usual Phred range; other scores are computed on demand
var errorProbs [256 - PHRED_OFFSET]float64

func init() {
	// Pre-compute error probabilities for Phred scores
	for i := range errorProbs {
		errorProbs[i] = math.Pow(10, float64(i)/-10)
	}
}

func errorProb(q int) float64 {
	if q >= 0 && q < len(errorProbs) {
		return errorProbs[q]
	}
	return math.Pow(10, float64(q)/-10)
}

// Sum of error probabilities for quality scores
func sumErrorProbs(quals Quals) float64 {
	var sum float64
	for _, q := range quals {
		sum += errorProb(q)
	}
	return sum
}

// Average Phred score, computed from the mean error probability
func calculateAvgPhred(quals Quals) float64 {
	if len(quals) == 0 {
		return 0.0
	}
	meanProb := sumErrorProbs(quals) / float64(len(quals))
	return -10 * math.Log10(meanProb)
}

// Maximum expected error (absolute number)
func calculateMaxEE(quals Quals) float64 {
	if len(quals) == 0 {
		return math.Inf(1)
	}
	return sumErrorProbs(quals)
}

// Maximum expected error rate (percentage per sequence length)
func calculateMeep(quals Quals) float64 {
	if len(quals) == 0 {
		return math.Inf(1)
	}
	return (sumErrorProbs(quals) * 100) / float64(len(quals))
}

func countLowQualityBases(quals Quals, minPhred int) float64 {
	if len(quals) == 0 {
		return math.Inf(1)
	}

	count := 0
	for _, q := range quals {
		if q < minPhred {
			count++
		}
	}
	return float64(count)
}

func calculateLQPercent(quals Quals, minPhred int) float64 {
	if len(quals) == 0 {
		return math.Inf(1)
	}
	return countLowQualityBases(quals, minPhred) * 100 / float64(len(quals))
}

// Quality computes the requested metric for one decoded quality vector.
// minPhred is only used by lqcount and lqpercent
func (m QualityMetric) Quality(quals Quals, minPhred int) float64 {
	switch m {
	case AvgPhred:
		return calculateAvgPhred(quals)
	case MaxEE:
		return calculateMaxEE(quals)
	case Meep:
		return calculateMeep(quals)
	case LQCount:
		return countLowQualityBases(quals, minPhred)
	case LQPercent:
		return calculateLQPercent(quals, minPhred)
	default:
		return 0
	}
}

// MeanQuality averages a quality metric over all reads.
// Returns NaN for an empty collection
func (f *FastQ) MeanQuality(metric QualityMetric, minPhred int) float64 {
	if len(f.ids) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, id := range f.ids {
		sum += metric.Quality(f.quals[id], minPhred)
	}
	return sum / float64(len(f.ids))
}
