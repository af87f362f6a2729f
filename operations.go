package twitterx

import (
	"context"
	"net/http"
	"net/url"
)

// Search searches tweets. An empty section defaults to SectionTop.
func (c *Client) Search(ctx context.Context, query string, section Section, page Page) (*http.Response, error) {
	if section == "" {
		section = SectionTop
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("section", string(section))
	pageParams(params, pageFull, page)
	return c.do(ctx, opSearch, params)
}

// TweetDetails fetches a tweet and its conversation. cursor pages through
// replies; pass "" for the first page.
func (c *Client) TweetDetails(ctx context.Context, tweetID, cursor string) (*http.Response, error) {
	params := url.Values{}
	params.Set("tweet_id", tweetID)
	pageParams(params, pageCursorOnly, Page{Cursor: cursor})
	return c.do(ctx, opTweetDetails, params)
}

// TweetRetweeters fetches users who retweeted a tweet.
func (c *Client) TweetRetweeters(ctx context.Context, tweetID string, page Page) (*http.Response, error) {
	return c.tweetList(ctx, opTweetRetweeters, tweetID, page)
}

// TweetFavoriters fetches users who favorited a tweet.
func (c *Client) TweetFavoriters(ctx context.Context, tweetID string, page Page) (*http.Response, error) {
	return c.tweetList(ctx, opTweetFavoriters, tweetID, page)
}

// tweetList is the shared executor for tweet-scoped list endpoints.
func (c *Client) tweetList(ctx context.Context, op, tweetID string, page Page) (*http.Response, error) {
	params := url.Values{}
	params.Set("tweet_id", tweetID)
	pageParams(params, pageFull, page)
	return c.do(ctx, op, params)
}

// UserDetails fetches a user profile.
func (c *Client) UserDetails(ctx context.Context, user UserIdentity) (*http.Response, error) {
	if err := user.validate(); err != nil {
		return nil, err
	}
	params := url.Values{}
	user.apply(params)
	return c.do(ctx, opUserDetails, params)
}

// UserTweets fetches a user's tweets.
func (c *Client) UserTweets(ctx context.Context, user UserIdentity, page Page) (*http.Response, error) {
	return c.userList(ctx, opUserTweets, user, page)
}

// UserTweetsAndReplies fetches a user's tweets and replies.
func (c *Client) UserTweetsAndReplies(ctx context.Context, user UserIdentity, page Page) (*http.Response, error) {
	return c.userList(ctx, opUserTweetsAndReplies, user, page)
}

// UserFollowers fetches a user's followers.
func (c *Client) UserFollowers(ctx context.Context, user UserIdentity, page Page) (*http.Response, error) {
	return c.userList(ctx, opUserFollowers, user, page)
}

// UserFollowing fetches the accounts a user follows.
func (c *Client) UserFollowing(ctx context.Context, user UserIdentity, page Page) (*http.Response, error) {
	return c.userList(ctx, opUserFollowing, user, page)
}

// UserLikes fetches tweets a user liked.
func (c *Client) UserLikes(ctx context.Context, user UserIdentity, page Page) (*http.Response, error) {
	return c.userList(ctx, opUserLikes, user, page)
}

// UserMedia fetches a user's media posts.
func (c *Client) UserMedia(ctx context.Context, user UserIdentity, page Page) (*http.Response, error) {
	return c.userList(ctx, opUserMedia, user, page)
}

// userList is the shared executor for user-scoped list endpoints. The
// username-or-id precondition is enforced here so every user-scoped
// operation behaves the same.
func (c *Client) userList(ctx context.Context, op string, user UserIdentity, page Page) (*http.Response, error) {
	if err := user.validate(); err != nil {
		return nil, err
	}
	params := url.Values{}
	user.apply(params)
	pageParams(params, pageFull, page)
	return c.do(ctx, op, params)
}

// ListDetails fetches a list's metadata.
func (c *Client) ListDetails(ctx context.Context, listID string) (*http.Response, error) {
	params := url.Values{}
	params.Set("list_id", listID)
	return c.do(ctx, opListDetails, params)
}

// ListTweets fetches tweets from a list.
func (c *Client) ListTweets(ctx context.Context, listID string, page Page) (*http.Response, error) {
	params := url.Values{}
	params.Set("list_id", listID)
	pageParams(params, pageFull, page)
	return c.do(ctx, opListTweets, params)
}

// TrendsLocations fetches the locations trends are available for.
func (c *Client) TrendsLocations(ctx context.Context) (*http.Response, error) {
	return c.do(ctx, opTrendsLocations, url.Values{})
}

// Trends fetches trends for a location identified by WOEID, obtainable from
// TrendsLocations.
func (c *Client) Trends(ctx context.Context, woeid string) (*http.Response, error) {
	params := url.Values{}
	params.Set("woeid", woeid)
	return c.do(ctx, opTrends, params)
}

// CommunityDetails fetches a community's metadata.
func (c *Client) CommunityDetails(ctx context.Context, communityID string) (*http.Response, error) {
	params := url.Values{}
	params.Set("community_id", communityID)
	return c.do(ctx, opCommunityDetails, params)
}

// CommunityTweets fetches tweets from a community.
func (c *Client) CommunityTweets(ctx context.Context, communityID string, page Page) (*http.Response, error) {
	return c.communityList(ctx, opCommunityTweets, communityID, page)
}

// CommunityMembers fetches members of a community.
func (c *Client) CommunityMembers(ctx context.Context, communityID string, page Page) (*http.Response, error) {
	return c.communityList(ctx, opCommunityMembers, communityID, page)
}

func (c *Client) communityList(ctx context.Context, op, communityID string, page Page) (*http.Response, error) {
	params := url.Values{}
	params.Set("community_id", communityID)
	pageParams(params, pageFull, page)
	return c.do(ctx, op, params)
}
