package twitterx

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultHost is the RapidAPI host serving the Twitter/X data API.
const DefaultHost = "twitter-x.p.rapidapi.com"

// pageMode describes which pagination parameters an endpoint accepts.
type pageMode int

const (
	pageNone       pageMode = iota // no pagination parameters
	pageCursorOnly                 // cursor but no limit
	pageFull                       // limit and cursor
)

// Operation names. Every public client method dispatches through exactly one
// of these table entries.
const (
	opSearch               = "Search"
	opTweetDetails         = "TweetDetails"
	opTweetRetweeters      = "TweetRetweeters"
	opTweetFavoriters      = "TweetFavoriters"
	opUserDetails          = "UserDetails"
	opUserTweets           = "UserTweets"
	opUserTweetsAndReplies = "UserTweetsAndReplies"
	opUserFollowers        = "UserFollowers"
	opUserFollowing        = "UserFollowing"
	opUserLikes            = "UserLikes"
	opUserMedia            = "UserMedia"
	opListDetails          = "ListDetails"
	opListTweets           = "ListTweets"
	opTrendsLocations      = "TrendsLocations"
	opTrends               = "Trends"
	opCommunityDetails     = "CommunityDetails"
	opCommunityTweets      = "CommunityTweets"
	opCommunityMembers     = "CommunityMembers"
)

// Endpoint holds the path and pagination shape of one logical operation.
type Endpoint struct {
	Label string   // human-readable log label
	Path  string   // path relative to the API host
	Page  pageMode // which pagination parameters the endpoint accepts
}

// URL returns the full request URL for this endpoint against the given host.
func (e Endpoint) URL(host string, params url.Values) string {
	u := fmt.Sprintf("https://%s/%s", strings.TrimSuffix(host, "/"), e.Path)
	if q := params.Encode(); q != "" {
		u += "?" + q
	}
	return u
}

// Endpoints maps operation names to their REST paths. Trailing slashes match
// the remote API's routing exactly and must not be normalized away.
var Endpoints = map[string]Endpoint{
	opSearch:               {Label: "Search", Path: "search/", Page: pageFull},
	opTweetDetails:         {Label: "Tweet Details", Path: "tweet/", Page: pageCursorOnly},
	opTweetRetweeters:      {Label: "Tweet Retweeters", Path: "tweet/retweeters/", Page: pageFull},
	opTweetFavoriters:      {Label: "Tweet Favoriters", Path: "tweet/favoriters/", Page: pageFull},
	opUserDetails:          {Label: "User Details", Path: "user/details", Page: pageNone},
	opUserTweets:           {Label: "User Tweets", Path: "user/tweets", Page: pageFull},
	opUserTweetsAndReplies: {Label: "User Tweets and Replies", Path: "user/tweetsandreplies", Page: pageFull},
	opUserFollowers:        {Label: "User Followers", Path: "user/followers", Page: pageFull},
	opUserFollowing:        {Label: "User Following", Path: "user/following", Page: pageFull},
	opUserLikes:            {Label: "User Likes", Path: "user/likes", Page: pageFull},
	opUserMedia:            {Label: "User Media", Path: "user/media", Page: pageFull},
	opListDetails:          {Label: "List Details", Path: "lists/details", Page: pageNone},
	opListTweets:           {Label: "List Tweets", Path: "lists/tweets", Page: pageFull},
	opTrendsLocations:      {Label: "Trends Locations", Path: "trends/available", Page: pageNone},
	opTrends:               {Label: "Trends", Path: "trends/", Page: pageNone},
	opCommunityDetails:     {Label: "Community Details", Path: "community/details", Page: pageNone},
	opCommunityTweets:      {Label: "Community Tweets", Path: "community/tweets", Page: pageFull},
	opCommunityMembers:     {Label: "Community Members", Path: "community/members", Page: pageFull},
}
