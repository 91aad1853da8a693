package utils

import "sync"

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) (kMax int) {
	kMin, kMaxB := pm.GetBucketRange(bn)
	kMax = kMaxB - kMin
	return
}

// GetBucket finds the partition holding index k, bucketNum is -1 when k is
// outside [0, MaxIndex)
func (pm *PartitionMap) GetBucket(k int) (bucketNum, kMin, kMax int) {
	if k < 0 || k >= pm.MaxIndex {
		return -1, 0, 0
	}
	// Buckets are contiguous and ordered, start from the proportional guess
	bucketNum = pm.ParallelDegree * k / pm.MaxIndex
	for {
		kMin, kMax = pm.GetBucketRange(bucketNum)
		switch {
		case k < kMin:
			bucketNum--
		case k >= kMax:
			bucketNum++
		default:
			return
		}
	}
}

// Split1D returns the index range of one partition. Sizes differ by at most
// one, the remainder goes to the leading partitions.
func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	var (
		Npart            = pm.MaxIndex / pm.ParallelDegree
		remainder        = pm.MaxIndex % pm.ParallelDegree
		startAdd, endAdd int
	)
	if threadNum < remainder {
		startAdd, endAdd = threadNum, 1
	} else {
		startAdd = remainder
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// ParallelFor partitions [0, N) into NP buckets and runs fn once per bucket,
// each in its own goroutine, returning after all have finished
func ParallelFor(NP, N int, fn func(bn, kMin, kMax int)) {
	if NP < 1 {
		NP = 1
	}
	var (
		pm = NewPartitionMap(NP, N)
		wg = sync.WaitGroup{}
	)
	for bn := 0; bn < NP; bn++ {
		kMin, kMax := pm.GetBucketRange(bn)
		if kMax == kMin {
			continue
		}
		wg.Add(1)
		go func(bn, kMin, kMax int) {
			defer wg.Done()
			fn(bn, kMin, kMax)
		}(bn, kMin, kMax)
	}
	wg.Wait()
}
