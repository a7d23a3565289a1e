// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pretty

import "errors"

// ErrInvalidText is returned by [Arena.Text] when the given fragment
// contains a line-break character. Breaks must be introduced with
// [Arena.Line] or [Arena.HardLine] so that the layout engine can account
// for them; a newline smuggled inside a text fragment would corrupt both
// width measurement and indentation.
var ErrInvalidText = errors.New("pretty: text fragment contains a line break")
