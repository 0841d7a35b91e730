package utils

import (
	"context"
	"sync"
	"testing"

	"go.viam.com/test"
)

func TestGroupWorkParallel(t *testing.T) {
	for _, totalSize := range []int{0, 1, 3, 17, 1000} {
		var mu sync.Mutex
		seen := make([]int, totalSize)
		var groups int
		err := GroupWorkParallel(
			context.Background(),
			totalSize,
			func(numGroups int) { groups = numGroups },
			func(groupNum, groupSize, from, to int) (MemberWorkFunc, GroupWorkDoneFunc) {
				return func(memberNum, workNum int) {
					mu.Lock()
					seen[workNum]++
					mu.Unlock()
				}, nil
			},
		)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, groups, test.ShouldBeLessThanOrEqualTo, ParallelFactor)
		if totalSize > 0 {
			test.That(t, groups, test.ShouldBeGreaterThan, 0)
		}
		for _, count := range seen {
			test.That(t, count, test.ShouldEqual, 1)
		}
	}
}

func TestGroupWorkParallelMerge(t *testing.T) {
	const totalSize = 513
	var partials []int
	err := GroupWorkParallel(
		context.Background(),
		totalSize,
		func(numGroups int) { partials = make([]int, numGroups) },
		func(groupNum, groupSize, from, to int) (MemberWorkFunc, GroupWorkDoneFunc) {
			sum := 0
			member := func(memberNum, workNum int) {
				sum += workNum
			}
			done := func() {
				partials[groupNum] = sum
			}
			return member, done
		},
	)
	test.That(t, err, test.ShouldBeNil)
	total := 0
	for _, p := range partials {
		total += p
	}
	test.That(t, total, test.ShouldEqual, totalSize*(totalSize-1)/2)
}

func TestGroupWorkParallelCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := GroupWorkParallel(ctx, 10, func(int) { called = true }, nil)
	test.That(t, err, test.ShouldBeError, context.Canceled)
	test.That(t, called, test.ShouldBeFalse)
}
