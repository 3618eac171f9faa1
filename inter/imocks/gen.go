// Copyright (c) 2023-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

//go:build ignore
// +build ignore

package main

//go:generate mockgen -write_generate_directive -destination pdp_repository.go -package imock -source ../pdp_repository.go
//go:generate mockgen -write_generate_directive -destination status_port.go -package imock -source ../status_port.go

func main() {}
