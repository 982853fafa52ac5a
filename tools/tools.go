// Copyright © 2017 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package tools holds independent utilities that complement the vu engine.
// Mostly expected to be small programs that help beat assets into a vu
// supported file format.
//
// Tools are added, removed, or tweaked depending on the availability of 3rd
// party asset related applications.
package tools
