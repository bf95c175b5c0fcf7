// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"flag"

	"fillmore-labs.com/lazyguard/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	flags.Var(behaviorValue(&r.behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(behaviorValue(&r.behavior, config.ReportAliases), "aliases", "report copies of lazy expression values")
	flags.Var(behaviorValue(&r.behavior, config.SuggestFixes), "fix-eval", "attach suggested materializing fixes")
	flags.Var(listValue{&r.lazyTypes}, "lazy-types", "comma-separated package/path.Name types treated as lazy composites")
	flags.Var(listValue{&r.valueTypes}, "value-types", "comma-separated package/path.Name types treated as plain values")
	flags.Var(listValue{&r.evalMethods}, "eval-methods", "comma-separated names of materializing operations")
}
