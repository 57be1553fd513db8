package util

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// ConcatIter chains several iterators into one.
func ConcatIter[A any](iters ...iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, thisIter := range iters {
			for v := range thisIter {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// SingleIter yields exactly one element.
func SingleIter[A any](elem A) iter.Seq[A] {
	return func(yield func(A) bool) {
		yield(elem)
	}
}

// MapIter applies f lazily to every element of the iterator.
func MapIter[A, B any](seq iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// SetFromSeq drains an iterator into a set sized for the given hint.
func SetFromSeq[V comparable](s iter.Seq[V], size int) *set.Set[V] {
	newSet := set.New[V](size)
	for item := range s {
		newSet.Insert(item)
	}
	return newSet
}

// JoinString renders every element with the fmt default verb and joins with sep.
func JoinString[A any](elems []A, sep string) string {
	strs := make([]string, len(elems))
	for i, elem := range elems {
		strs[i] = fmt.Sprintf("%v", elem)
	}
	return strings.Join(strs, sep)
}
