/*
 * catalog.go, part of vasptools.
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
 */

//Package potcar assembles VASP POTCAR files by concatenating per-element
//PAW pseudopotential blocks from a local potential library, in the element
//order of the structure file's header.
package potcar

import "fmt"

//NSettings is the number of PAW selection policies in the catalog.
const NSettings = 7

//SettingDescriptions names the PAW selection policies, indexed by
//setting-1. Sources: the VASP wiki list of available PAW potentials and
//the Materials Project pseudopotential recommendations (both as of
//2023-09-01).
var SettingDescriptions = [NSettings]string{
	"VASP recommendation",
	"Hard potentials, VASP recommendation where not available",
	"VASP recommendation for GW/RPA",
	"Hard GW/RPA potentials, VASP recommendation where not available",
	"Materials Project recommendation",
	"Minimum-electron potentials",
	"Max(VASP recommendation, Materials Project recommendation)",
}

//ValidSetting reports whether n is a known PAW setting (1-based).
func ValidSetting(n int) bool {
	return n >= 1 && n <= NSettings
}

//Resolve returns the PAW potential directory name for an element under the
//given setting (1-based). Unknown elements and catalog gaps (no potential
//of the requested flavor exists) are hard errors naming both.
func Resolve(element string, setting int) (string, error) {
	if !ValidSetting(setting) {
		return "", fmt.Errorf("potcar: unknown PAW setting %d (valid: 1-%d)", setting, NSettings)
	}
	row, ok := catalog[element]
	if !ok {
		return "", fmt.Errorf("potcar: element %s is not in the PAW catalog", element)
	}
	name := row[setting-1]
	if name == "" {
		return "", fmt.Errorf("potcar: no PAW potential for element %s under setting %d (%s)", element, setting, SettingDescriptions[setting-1])
	}
	return name, nil
}

//Elements returns the element symbols present in the catalog.
func Elements() []string {
	out := make([]string, 0, len(catalog))
	for e := range catalog {
		out = append(out, e)
	}
	return out
}

//Row returns the full catalog row for an element, one potential name (or
//empty string) per setting.
func Row(element string) ([NSettings]string, bool) {
	row, ok := catalog[element]
	return row, ok
}

//catalog maps an element symbol to its PAW potential name for each of the
//seven settings. The "Cuhost"/"Aghost" keys select plain host potentials
//for the majority species of a single-atom alloy. Empty entries mean no
//potential of that flavor ships with the library.
var catalog = map[string][NSettings]string{
	"H":      {"H", "H_h", "H_GW", "H_h_GW", "H", "H", "H"},
	"He":     {"He", "He", "He_GW", "He_GW", "He", "He", "He"},
	"Li":     {"Li_sv", "Li_sv", "Li_sv_GW", "Li_sv_GW", "Li_sv", "Li", "Li_sv"},
	"Be":     {"Be", "Be", "Be_sv_GW", "Be_sv_GW", "Be_sv", "Be", "Be_sv"},
	"B":      {"B", "B_h", "B_GW", "B_GW", "B", "B", "B"},
	"C":      {"C", "C_h", "C_GW", "C_h_GW", "C", "C", "C"},
	"N":      {"N", "N_h", "N_GW", "N_h_GW", "N", "N", "N"},
	"O":      {"O", "O_h", "O_GW", "O_h_GW", "O", "O", "O"},
	"F":      {"F", "F_h", "F_GW", "F_h_GW", "F", "F", "F"},
	"Ne":     {"Ne", "Ne", "Ne_GW", "Ne_GW", "Ne", "Ne", "Ne"},
	"Na":     {"Na_pv", "Na_pv", "Na_sv_GW", "Na_sv_GW", "Na_pv", "Na", "Na_pv"},
	"Mg":     {"Mg", "Mg", "Mg_sv_GW", "Mg_sv_GW", "Mg_pv", "Mg", "Mg_pv"},
	"Al":     {"Al", "Al", "Al_GW", "Al_GW", "Al", "Al", "Al"},
	"Si":     {"Si", "Si", "Si_GW", "Si_GW", "Si", "Si", "Si"},
	"P":      {"P", "P_h", "P_GW", "P_GW", "P", "P", "P"},
	"S":      {"S", "S_h", "S_GW", "S_GW", "S", "S", "S"},
	"Cl":     {"Cl", "Cl_h", "Cl_GW", "Cl_GW", "Cl", "Cl", "Cl"},
	"Ar":     {"Ar", "Ar", "Ar_GW", "Ar_GW", "Ar", "Ar", "Ar"},
	"K":      {"K_sv", "K_sv", "K_sv_GW", "K_sv_GW", "K_sv", "K_pv", "K_sv"},
	"Ca":     {"Ca_sv", "Ca_sv", "Ca_sv_GW", "Ca_sv_GW", "Ca_sv", "Ca_pv", "Ca_sv"},
	"Sc":     {"Sc_sv", "Sc_sv", "Sr_sv_GW", "Sr_sv_GW", "Sc_sv", "Sc", "Sc_sv"},
	"Ti":     {"Ti_sv", "Ti_sv", "Ti_sv_GW", "Ti_sv_GW", "Ti_pv", "Ti", "Ti_sv"},
	"V":      {"V_sv", "V_sv", "V_sv_GW", "V_sv_GW", "", "V", "V_sv"},
	"Cr":     {"Cr_pv", "Cr_pv", "Cr_sv_GW", "Cr_sv_GW", "Cr_pv", "Cr", "Cr_pv"},
	"Mn":     {"Mn_pv", "Mn_pv", "Mn_sv_GW", "Mn_sv_GW", "Mn_pv", "Mn", "Mn_pv"},
	"Fe":     {"Fe", "Fe", "Fe_sv_GW", "Fe_sv_GW", "Fe_pv", "Fe", "Fe_pv"},
	"Co":     {"Co", "Co", "Co_sv_GW", "Co_sv_GW", "Co", "Co", "Co"},
	"Ni":     {"Ni", "Ni", "Ni_sv_GW", "Ni_sv_GW", "Ni_pv", "Ni", "Ni_pv"},
	"Cu":     {"Cu", "Cu", "Cu_sv_GW", "Cu_sv_GW", "Cu_pv", "Cu", "Cu_pv"},
	"Cuhost": {"Cu", "Cu", "Cu_sv_GW", "Cu_sv_GW", "Cu_pv", "Cu", "Cu"},
	"Zn":     {"Zn", "Zn", "Zn_sv_GW", "Zn_sv_GW", "Zn", "Zn", "Zn"},
	"Ga":     {"Ga_d", "Ga_h", "Ga_d_GW", "Ga_d_GW", "Ga_d", "Ga", "Ga_d"},
	"Ge":     {"Ge_d", "Ge_h", "Ge_d_GW", "Ge_d_GW", "Ge_d", "Ge", "Ge_d"},
	"As":     {"As", "As", "As_GW", "As_GW", "As", "As", "As"},
	"Se":     {"Se", "Se", "Se_GW", "Se_GW", "Se", "Se", "Se"},
	"Br":     {"Br", "Br", "Br_GW", "Br_GW", "Br", "Br", "Br"},
	"Kr":     {"Kr", "Kr", "Kr_GW", "Kr_GW", "Kr", "Kr", "Kr"},
	"Rb":     {"Rb_sv", "Rb_sv", "Rb_sv_GW", "Rb_sv_GW", "Rb_sv", "Rb_pv", "Rb_sv"},
	"Sr":     {"Sr_sv", "Sr_sv", "Sr_sv_GW", "Sr_sv_GW", "Sr_sv", "Sr_sv", "Sr_sv"},
	"Y":      {"Y_sv", "Y_sv", "Y_sv_GW", "Y_sv_GW", "Y_sv", "Y_sv", "Y_sv"},
	"Zr":     {"Zr_sv", "Zr_sv", "Zr_sv_GW", "Zr_sv_GW", "Zr_sv", "Zr_sv", "Zr_sv"},
	"Nb":     {"Nb_sv", "Nb_sv", "Nb_sv_GW", "Nb_sv_GW", "Nb_pv", "Nb_pv", "Nb_sv"},
	"Mo":     {"Mo_sv", "Mo_sv", "Mo_sv_GW", "Mo_sv_GW", "Mo_pv", "Mo", "Mo_sv"},
	"Tc":     {"Tc_pv", "Tc_pv", "Tc_sv_GW", "Tc_sv_GW", "Tc_pv", "Tc", "Tc_pv"},
	"Ru":     {"Ru_pv", "Ru_pv", "Ru_sv_GW", "Ru_sv_GW", "Ru_pv", "Ru", "Ru_pv"},
	"Rh":     {"Rh_pv", "Rh_pv", "Rh_sv_GW", "Rh_sv_GW", "Rh_pv", "Rh", "Rh_pv"},
	"Pd":     {"Pd", "Pd", "Pd_sv_GW", "Pd_sv_GW", "Pd", "Pd", "Pd"},
	"Ag":     {"Ag", "Ag", "Ag_sv_GW", "Ag_sv_GW", "Ag", "Ag", "Ag"},
	"Aghost": {"Ag", "Ag", "Ag_sv_GW", "Ag_sv_GW", "Ag", "Ag", "Ag"},
	"Cd":     {"Cd", "Cd", "Cd_sv_GW", "Cd_sv_GW", "Cd", "Cd", "Cd"},
	"In":     {"In_d", "In_d", "In_d_GW", "In_d_GW", "In_d", "In", "In_d"},
	"Sn":     {"Sn_d", "Sn_d", "Sn_d_GW", "Sn_d_GW", "Sn_d", "Sn", "Sn_d"},
	"Sb":     {"Sb", "Sb", "Sb_d_GW", "Sb_d_GW", "Sb", "Sb", "Sb"},
	"Te":     {"Te", "Te", "Te_GW", "Te_GW", "Te", "Te", "Te"},
	"I":      {"I", "I", "I_GW", "I_GW", "I", "I", "I"},
	"Xe":     {"Xe", "Xe", "Xe_GW", "Xe_GW", "Xe", "Xe", "Xe"},
	"Cs":     {"Cs_sv", "Cs_sv", "Cs_sv_GW", "Cs_sv_GW", "Cs_sv", "Cs_sv", "Cs_sv"},
	"Ba":     {"Ba_sv", "Ba_sv", "Ba_sv_GW", "Ba_sv_GW", "Ba_sv", "Ba_sv", "Ba_sv"},
	"La":     {"La", "La", "La_GW", "La_GW", "La", "La_s", "La"},
	"Ce":     {"Ce", "Ce_h", "Ce_GW", "Ce_GW", "Ce", "Ce_3", "Ce"},
	"Pr":     {"Pr_3", "Pr_3", "", "", "Pr_3", "Pr_3", "Pr_3"},
	"Nd":     {"Nd_3", "Nd_3", "", "", "Nd_3", "Nd_3", "Nd_3"},
	"Pm":     {"Pm_3", "Pm_3", "", "", "Pm_3", "Pm_3", "Pm_3"},
	"Sm":     {"Sm_3", "Sm_3", "", "", "Sm_3", "Sm_3", "Sm_3"},
	"Eu":     {"Eu_2", "Eu_2", "", "", "Eu", "Eu_2", "Eu"},
	"Gd":     {"Gd_3", "Gd_3", "", "", "Gd", "Gd_3", "Gd"},
	"Tb":     {"Tb_3", "Tb_3", "", "", "Tb_3", "Tb_3", "Tb_3"},
	"Dy":     {"Dy_3", "Dy_3", "", "", "Dy_3", "Dy_3", "Dy_3"},
	"Ho":     {"Ho_3", "Ho_3", "", "", "Ho_3", "Ho_3", "Ho_3"},
	"Er":     {"Er_3", "Er_3", "", "", "Er_3", "Er_2", "Er_3"},
	"Tm":     {"Tm_3", "Tm_3", "", "", "Tm_3", "Tm_3", "Tm_3"},
	"Yb":     {"Yb_2", "Yb_2", "", "", "Yb_2", "Yb_2", "Yb_2"},
	"Lu":     {"Lu_3", "Lu_3", "", "", "Lu", "Lu_3", "Lu"},
	"Hf":     {"Hf_pv", "Hf_pv", "Hf_sv_GW", "Hf_sv_GW", "Hf_pv", "Hf", "Hf_pv"},
	"Ta":     {"Ta_pv", "Ta_pv", "Ta_sv_GW", "Ta_sv_GW", "Ta_pv", "Ta", "Ta_pv"},
	"W":      {"W_sv", "W_sv", "W_sv_GW", "W_sv_GW", "W_sv", "W", "W_sv"},
	"Re":     {"Re", "Re", "Re_sv_GW", "Re_sv_GW", "Re_pv", "Re", "Re_pv"},
	"Os":     {"Os", "Os", "Os_sv_GW", "Os_sv_GW", "Os_pv", "Os", "Os_pv"},
	"Ir":     {"Ir", "Ir", "Ir_sv_GW", "Ir_sv_GW", "Ir", "Ir", "Ir"},
	"Pt":     {"Pt", "Pt", "Pt_sv_GW", "Pt_sv_GW", "Pt", "Pt", "Pt"},
	"Au":     {"Au", "Au", "Au_sv_GW", "Au_sv_GW", "Au", "Au", "Au"},
	"Hg":     {"Hg", "Hg", "Hg_sv_GW", "Hg_sv_GW", "Hg", "Hg", "Hg"},
	"Tl":     {"Tl_d", "Tl_d", "Tl_d_GW", "Tl_d_GW", "Tl_d", "Tl", "Tl_d"},
	"Pb":     {"Pb_d", "Pb_d", "Pb_d_GW", "Pb_d_GW", "Pb_d", "Pb", "Pb_d"},
	"Bi":     {"Bi_d", "Bi_d", "Bi_d_GW", "Bi_d_GW", "Bi", "Bi", "Bi_d"},
	"Po":     {"Po_d", "Po_d", "Po_d_GW", "Po_d_GW", "", "Po", "Po_d"},
	"At":     {"At", "At", "At_d_GW", "At_d_GW", "", "At", "At"},
	"Rn":     {"Rn", "Rn", "Rn_d_GW", "Rn_d_GW", "", "Rn", "Rn"},
}
