package archive

import "math/rand/v2"

// PickFood chooses a random menu. intn must return a value in [0, n); nil
// means math/rand. The second result is false when there is nothing to pick.
func PickFood(menus []FoodMenu, intn func(n int) int) (FoodMenu, bool) {
	if len(menus) == 0 {
		return FoodMenu{}, false
	}
	if intn == nil {
		intn = rand.IntN
	}
	return menus[intn(len(menus))], true
}
