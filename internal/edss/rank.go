package edss

// maxAndCount returns the largest value in v and the number of slots equal to
// it. v must be non-empty.
func maxAndCount(v []int) (int, int) {
	max := v[0]
	for _, s := range v[1:] {
		if s > max {
			max = s
		}
	}
	count := 0
	for _, s := range v {
		if s == max {
			count++
		}
	}
	return max, count
}

// secondMaxAndCount returns the largest value among slots strictly below max,
// and the number of slots equal to that value. Returns (0, 0) when every slot
// holds the max.
func secondMaxAndCount(v []int, max int) (int, int) {
	second, count := 0, 0
	for _, s := range v {
		if s >= max {
			continue
		}
		switch {
		case s > second:
			second, count = s, 1
		case s == second:
			count++
		}
	}
	return second, count
}
