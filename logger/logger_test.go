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

package logger

import (
	"testing"
	"time"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestLogger_NewLogger(t *testing.T) {
	var tests = []struct {
		name    string
		level   string
		enabled logging.Level
		muted   logging.Level
	}{
		{
			name:    "debug",
			level:   "DEBUG",
			enabled: logging.DEBUG,
		},
		{
			name:    "warning",
			level:   "Warning",
			enabled: logging.WARNING,
			muted:   logging.INFO,
		},
		{
			name:    "invalid log level",
			level:   "INVALID",
			enabled: logging.INFO,
			muted:   logging.DEBUG,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := NewLogger(test.level, "test-"+test.name)
			assert.NotNil(t, l)
			assert.True(t, l.IsEnabledFor(test.enabled))
			if test.muted != 0 {
				assert.False(t, l.IsEnabledFor(test.muted))
			}
		})
	}
}

func TestLogger_ParseTime(t *testing.T) {
	elapsed := 3661 * time.Second
	hours, minutes, seconds := ParseTime(elapsed)

	assert.Equal(t, uint32(1), hours)
	assert.Equal(t, uint32(1), minutes)
	assert.Equal(t, uint32(1), seconds)
}
