// Package fares holds the Île-de-France fare table used by the planner.
//
// The table is a small set of fixed prices: the t+ single ticket, the
// Mobilis day pass, the Navigo week pass, the two airport transfer fares
// (RER B and the flat taxi fare) and the issuance fees for the physical
// Navigo Easy and Navigo Découverte cards. Defaults can be overridden
// per-deployment through the fares section of config.yml.
package fares
