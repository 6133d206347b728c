package intersect

import (
	"testing"

	_ "github.com/future-architect/intersect/nlp/english"
	_ "github.com/future-architect/intersect/nlp/japanese"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEN(t *testing.T) {
	ix := newTestIndex(t, "")
	for _, data := range searchData {
		doc := *data
		doc.Language = "en"
		_, err := ix.PostDocument(doc.UniqueKey, &doc)
		require.NoError(t, err)
	}
	testcases := []struct {
		name       string
		searchWord string
		searchTag  []string
		want       []string
	}{
		{
			name:       "simple word search",
			searchWord: "post",
			want:       []string{"200 OK", "201 Created"},
		},
		{
			name:      "simple tag search",
			searchTag: []string{"NoBody"},
			want:      []string{"100 Continue", "101 Switching Protocol", "102 Processing", "103 Early Hints"},
		},
		{
			name:       "word and tag search",
			searchWord: "post",
			searchTag:  []string{"200"},
			want:       []string{"200 OK"},
		},
		{
			name:       "word and tag conflict",
			searchWord: "post",
			searchTag:  []string{"NoBody"},
			want:       []string{},
		},
		{
			name:       "two words",
			searchWord: "requests servers",
			want:       []string{"101 Switching Protocol", "102 Processing", "200 OK", "202 Accepted"},
		},
		{
			name:       "two words and tag",
			searchWord: "request server",
			searchTag:  []string{"NoBody"},
			want:       []string{"101 Switching Protocol", "102 Processing"},
		},
		{
			name:       "unknown word",
			searchWord: "request unicorn",
			want:       []string{},
		},
		{
			name:      "unknown tag",
			searchTag: []string{"NoBody", "418"},
			want:      []string{},
		},
	}
	for _, kernel := range Kernels() {
		for _, testcase := range testcases {
			t.Run(kernel.String()+"/"+testcase.name, func(t *testing.T) {
				docs, err := ix.SearchWithKernel(testcase.searchWord, testcase.searchTag, "en", kernel)
				require.NoError(t, err)
				titles := make([]string, len(docs))
				for i, doc := range docs {
					titles[i] = doc.Title
				}
				assert.Equal(t, testcase.want, titles)
			})
		}
	}
}

func TestSearch_Empty(t *testing.T) {
	ix := newTestIndex(t, "merge")
	docs, err := ix.Search("", nil, "")
	assert.NoError(t, err)
	assert.Nil(t, docs)

	_, err = ix.Search("word", nil, "klingon")
	assert.Error(t, err)
}

var searchData = []*Document{
	{
		Title:     "100 Continue",
		UniqueKey: "100 Continue",
		Content: `100 Continue

This interim response indicates that everything so far is OK and that the client should continue the request, or ignore the response if the request is already finished.`,
		Tags: []string{"100", "NoBody"},
	},
	{
		Title:     "101 Switching Protocol",
		UniqueKey: "101 Switching Protocol",
		Content: `
101 Switching Protocol

This code is sent in response to an Upgrade request header from the client, and indicates the protocol the server is switching to.`,
		Tags: []string{"101", "NoBody"},
	},
	{
		Title:     "102 Processing",
		UniqueKey: "102 Processing",
		Content: `102 Processing

This code indicates that the server has received and is processing the request, but no response is available yet.`,
		Tags: []string{"102", "NoBody", "WebDAV"},
	},
	{
		Title:     "103 Early Hints",
		UniqueKey: "103 Early Hints",
		Content: `103 Early Hints

This status code is primarily intended to be used with the Link header, letting the user agent start preloading resources while the server prepares a response.`,
		Tags: []string{"103", "NoBody"},
	},
	{
		Title:     "200 OK",
		UniqueKey: "200 OK",
		Content: `200 OK

The request has succeeded. The meaning of the success depends on the HTTP method:
* GET: The resource has been fetched and is transmitted in the message body.
* HEAD: The entity headers are in the message body.
* PUT or POST: The resource describing the result of the action is transmitted in the message body.
* TRACE: The message body contains the request message as received by the server`,
		Tags: []string{"200"},
	},
	{
		Title:     "201 Created",
		UniqueKey: "201 Created",
		Content: `201 Created

The request has succeeded and a new resource has been created as a result.
This is typically the response sent after POST requests, or some PUT requests.`,
		Tags: []string{"201"},
	},
	{
		Title:     "202 Accepted",
		UniqueKey: "202 Accepted",
		Content: `202 Accepted

The request has been received but not yet acted upon.
It is noncommittal, since there is no way in HTTP to later send an asynchronous response indicating the outcome of the request.
It is intended for cases where another process or server handles the request, or for batch processing.`,
		Tags: []string{"202"},
	},
}

func TestSearchJP(t *testing.T) {
	ix := newTestIndex(t, "binary-search")
	doc := &Document{
		Language: "ja",
		Title:    "ドリルではなく穴が欲しい。穴が必要なシチュエーションは？",
		Tags:     []string{"Go", "アプローチ"},
		Content: `Go で作ったと話すと、「どうやってそれでOKもらったのか？」と聞かれることがある。具体的な内容ではなく、アプローチをメモしておく。

「顧客はドリルではなく穴が欲しい」とよく言われる。もう一歩進んで穴が必要なシチュエーションも考えてみましょう、と。そうすると穴が必要であることを自覚していない人を、ドリルの顧客にできるかも知れない。`,
		Metadata: map[string]string{
			"source": "medium",
		},
	}
	id, err := ix.PostDocument("bucho-medium", doc)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), id)

	docs, err := ix.Search("ドリル", nil, "ja")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(docs))

	docs, err = ix.Search("ドリル", []string{"アプローチ"}, "ja")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(docs))
}
