/*
 * atomicdata.go, part of readcon-core.
 *
 * Copyright 2024 The readcon-core authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package readcon

//A map for assigning atomic numbers to element symbols.
//Surface-science and "bio" elements are present; con files written by
//other codes may use labels that are not element symbols at all, which
//simply map to 0.
var symbolAtomicNumber = map[string]int{
	"H":  1,
	"He": 2,
	"Li": 3,
	"Be": 4,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Ne": 10,
	"Na": 11,
	"Mg": 12,
	"Al": 13,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"Ar": 18,
	"K":  19,
	"Ca": 20,
	"Ti": 22,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Ni": 28,
	"Cu": 29,
	"Zn": 30,
	"Se": 34,
	"Br": 35,
	"Mo": 42,
	"Ru": 44,
	"Rh": 45,
	"Pd": 46,
	"Ag": 47,
	"I":  53,
	"W":  74,
	"Ir": 77,
	"Pt": 78,
	"Au": 79,
}

//A map for assigning mass to elements.
//Note that just common elements are present.
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
	"Al": 26.98,
	"Ni": 58.69,
	"Pd": 106.42,
	"Ag": 107.87,
	"Pt": 195.08,
	"Au": 196.97,
}

// AtomicNumber returns the atomic number for an element symbol, or 0 if
// the symbol is not a known element.
func AtomicNumber(symbol string) int {
	return symbolAtomicNumber[symbol]
}

// SymbolMass returns the mass for an element symbol and whether the
// symbol was known.
func SymbolMass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}
