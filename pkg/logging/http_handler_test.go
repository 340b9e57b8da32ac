// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package logging

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// Get log level from server and verify the level
func verifyLogLevel(t *testing.T, server *httptest.Server, level string) {
	t.Helper()
	resp, err := http.Get(server.URL + "/loglevel")
	require.NoError(t, err)
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, level, string(respBody))
}

func postLoglevelMultipart(t *testing.T, server *httptest.Server, level string) *http.Response {
	t.Helper()
	template := "--ZZZ\r\nContent-Disposition: form-data; name=\"level\"\r\n\r\n%s\r\n--ZZZ--\r\n"
	body := strings.NewReader(fmt.Sprintf(template, level))
	req, err := http.NewRequest(http.MethodPost, server.URL+"/loglevel", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=ZZZ")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestHandleLoglevel(t *testing.T) {
	require.NoError(t, InitSlog(io.Discard, "debug", LogDiscard))

	router := chi.NewRouter()
	for _, route := range LogRoutes {
		router.MethodFunc(route.Method, route.Path, route.Handler)
	}
	ts := httptest.NewServer(router)
	defer ts.Close()

	verifyLogLevel(t, ts, "DEBUG\n")

	resp := postLoglevelMultipart(t, ts, "info")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	verifyLogLevel(t, ts, "INFO\n")

	resp, err := http.PostForm(ts.URL+"/loglevel", url.Values{"level": {"warn"}})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	verifyLogLevel(t, ts, "WARN\n")

	resp = postLoglevelMultipart(t, ts, "banana")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	verifyLogLevel(t, ts, "WARN\n")

	resp, err = http.PostForm(ts.URL+"/loglevel", url.Values{})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
