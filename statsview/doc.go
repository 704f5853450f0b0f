// This file is part of gslib.
//
// gslib is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gslib is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gslib.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview is an optional package that is built only when the
// "statsview" build tag is present. It runs a local HTTP server showing
// runtime statistics, provided by "github.com/go-echarts/statsview".
//
// Statistics are useful when running the driver for long periods, to see
// whether swapping frame buffers on every vertical blank causes the
// allocation rate or the number of goroutines to grow.
//
// After launch, the statistics are viewable at:
//
//	localhost:12600/debug/statsview
package statsview
