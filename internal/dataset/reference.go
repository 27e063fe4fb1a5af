package dataset

import "fmt"

// Reference returns the built-in tables used when no live analysis backend
// is configured. Each call returns fresh maps.
func Reference() Tables {
	return Tables{
		Snapshots: SnapshotTable{
			Today:     {{Positive, 40}, {Negative, 30}, {Neutral, 30}},
			LastWeek:  {{Positive, 45}, {Negative, 25}, {Neutral, 30}},
			LastMonth: {{Positive, 50}, {Negative, 20}, {Neutral, 30}},
		},
		Items: ItemTable{
			Positive: referenceItems(Positive, positiveBodies),
			Negative: referenceItems(Negative, negativeBodies),
			Neutral:  referenceItems(Neutral, neutralBodies),
		},
	}
}

func referenceItems(c Category, bodies []string) []TextItem {
	items := make([]TextItem, len(bodies))
	for i, body := range bodies {
		items[i] = TextItem{
			ID:   fmt.Sprintf("ref-%s-%02d", c, i+1),
			Body: body,
		}
	}
	return items
}

var positiveBodies = []string{
	"This is amazing! I've been following this subreddit for a while now, and the quality of content just keeps getting better. It's so refreshing to see such positive and constructive discussions here.",
	"I love this community! Everyone is so supportive and encouraging. It's rare to find such a welcoming place on the internet these days.",
	"Great post, very informative! I learned so much from this. It's clear that a lot of research and thought went into creating this content.",
	"This made my day! I was feeling down, but reading through this thread has really lifted my spirits. Thank you all for being awesome!",
	"Awesome content as always! The moderators and contributors here are doing an incredible job. Keep up the fantastic work!",
	"I'm so glad I found this subreddit! The wealth of knowledge and positivity here is unmatched. It's become my go-to place for information and inspiration.",
	"This deserves more upvotes! It's criminal how underrated this post is. Everyone needs to see this!",
	"Keep up the good work! Posts like these are why I keep coming back to this subreddit. It's consistently high-quality and engaging.",
	"This is why I love Reddit! Where else can you find such a diverse group of people coming together to share knowledge and experiences?",
	"Very well explained, thanks! I've been struggling to understand this concept for a while, but your explanation made it crystal clear.",
}

var negativeBodies = []string{
	"This is disappointing. I expected much more from this subreddit. The quality of posts has been declining steadily over the past few months.",
	"I expected better. This post is full of inaccuracies and misleading information. It's frustrating to see such low-quality content being upvoted.",
	"This post is misleading. The author clearly hasn't done proper research and is spreading misinformation. This needs to be addressed by the moderators.",
	"I strongly disagree with this. The arguments presented here are flawed and don't take into account the complexities of the situation.",
	"This content is getting repetitive. How many times are we going to see the same topics rehashed? We need some fresh perspectives and ideas.",
	"Not sure why this is getting upvotes. It's poorly written, lacks substance, and doesn't contribute anything meaningful to the discussion.",
	"This is a waste of time. I can't believe I spent valuable minutes of my life reading this nonsense. Do better, please.",
	"I'm unsubscribing from this subreddit. The constant negativity and lack of moderation have made this place unbearable. Goodbye!",
	"This is factually incorrect. A simple Google search would have prevented the spread of this misinformation. Please fact-check before posting.",
	"The quality of posts here is declining. What happened to the insightful discussions and well-researched content? This subreddit used to be so much better.",
}

var neutralBodies = []string{
	"Interesting perspective. While I don't entirely agree, I can see where the author is coming from. It's always good to consider different viewpoints.",
	"Not sure what to think about this. On one hand, the arguments seem logical, but on the other, I feel like some important factors are being overlooked.",
	"I can see both sides of the argument. This is a complex issue with no easy answers. It's good to see a balanced discussion taking place.",
	"This needs more context. While the post raises some valid points, I think we need more information to form a complete picture of the situation.",
	"I'm on the fence about this. There are compelling arguments on both sides, and I'm finding it difficult to take a firm stance either way.",
	"Could someone explain this further? I feel like I'm missing some key information that would help me understand the full implications of this topic.",
	"I have mixed feelings about this. Some parts of the post resonate with me, while others seem questionable. I'll need to do more research.",
	"This is a complex issue. It's refreshing to see a nuanced discussion instead of the usual black-and-white arguments we often see online.",
	"I need more information to form an opinion. The post raises some interesting points, but I feel like there's more to the story that we're not seeing.",
	"Let's see how this develops. It's an intriguing topic, but I think we need more time and data to fully understand its implications and potential outcomes.",
}
