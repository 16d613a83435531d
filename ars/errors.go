/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ars

import (
	"github.com/fentec-project/goars/internal"
)

// Errors reported by sampling runs. Returned errors wrap one of them
// and can be matched with errors.Is or errors.Cause.
var (
	ErrInvalidParameter  = internal.ErrInvalidParameter
	ErrNonConcaveDensity = internal.ErrNonConcaveDensity
	ErrNumericOverflow   = internal.ErrNumericOverflow
	ErrRejectionLimit    = internal.ErrRejectionLimit
)
