package mux

import (
	"encoding/json"
	"errors"
	"hobbitname-server/pkg/namegen"
	"hobbitname-server/pkg/queryparam"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_queryValue(t *testing.T) {
	req := func(queryString string) *http.Request {
		req, _ := http.NewRequest(http.MethodGet, "https://example.domain/"+queryString, nil)
		return req
	}

	val, err := queryValue(req("?id=123&name=Bilbo"), "name")
	assert.NoError(t, err)
	assert.Equal(t, "Bilbo", val)

	val, err = queryValue(req("?q=a+b"), "q")
	assert.NoError(t, err)
	assert.Equal(t, "a b", val)

	val, err = queryValue(req("?id=123"), "name")
	assert.NoError(t, err)
	assert.Equal(t, "", val)

	_, err = queryValue(req("?name=%zz"), "name")
	assert.True(t, errors.Is(err, queryparam.ErrMalformed))
	assert.EqualError(t, err, `could not decode name: malformed parameter value: invalid URL escape "%zz"`)
}

func Test_parseCount(t *testing.T) {
	m := NewMux("", nil, Options{MaxBatch: 10})
	req := func(queryString string) *http.Request {
		req, _ := http.NewRequest(http.MethodGet, "https://example.domain/name"+queryString, nil)
		return req
	}

	count, err := m.parseCount(req(""))
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = m.parseCount(req("?count=10"))
	assert.NoError(t, err)
	assert.Equal(t, 10, count)

	_, err = m.parseCount(req("?count=%zz"))
	assert.True(t, errors.Is(err, queryparam.ErrMalformed))

	_, err = m.parseCount(req("?count=abc"))
	assert.EqualError(t, err, "count must be a number")

	_, err = m.parseCount(req("?count=0"))
	assert.EqualError(t, err, "count must be greater than zero")

	_, err = m.parseCount(req("?count=11"))
	assert.EqualError(t, err, "count cannot be greater than 10")
}

func Test_writeGeneratorError(t *testing.T) {
	w := httptest.NewRecorder()
	writeGeneratorError(w, namegen.ErrEmptyPool)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errObj errorResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&errObj))
	assert.Equal(t, namegen.ErrEmptyPool.Error(), errObj.Message)

	w = httptest.NewRecorder()
	writeGeneratorError(w, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&errObj))
	assert.Equal(t, "Internal Server Error", errObj.Message)
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGetWithResp(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return nil
	}

	return assertDo(t, req, respObj, statusCode)
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()
	assertGetWithResp(t, ts, path, respObj, statusCode)
}
