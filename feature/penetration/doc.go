// Package penetration implements the Jacob de Marre armour penetration estimate
// used for naval AP shells.
//
//	pen = speed^1.43 * mass^0.71 / (1900^1.43 * (caliber/100)^1.07) * 100 * knap * cap
//
// knap penalises high explosive filler, cap is 1.0 for capped shells and 0.9 otherwise.
// The result is in millimetres rounded to two decimals.
package penetration
