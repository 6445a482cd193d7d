package agent

import (
	"fmt"

	"github.com/margdarshak/disha/internal/domain"
)

// Fixed conversation messages in both languages. These are rule-emitted
// text, never generated: the agent must keep working with no text-generation
// provider at all.

func welcomeMessage(lang domain.Language) string {
	if lang == domain.LangMarathi {
		return "नमस्कार! मी तुमचा करिअर मार्गदर्शन सहाय्यक आहे. मी तुम्हाला तुमच्या शैक्षणिक स्ट्रीम आणि आवडींवर आधारित करिअर शिफारसी देण्यात मदत करू. चला सुरू करूया!"
	}
	return "Hello! I'm your career guidance assistant. I'll help you discover career options based on your academic stream and interests. Let's begin!"
}

func invalidAnswerMessage(lang domain.Language) string {
	if lang == domain.LangMarathi {
		return "कृपया वैध उत्तर प्रदान करा."
	}
	return "Please provide a valid answer."
}

func confirmStreamMessage(lang domain.Language, streamName string) string {
	if lang == domain.LangMarathi {
		return fmt.Sprintf("तुमच्या उत्तरांवर आधारित, तुम्ही %s स्ट्रीममध्ये असल्याचे दिसते. हे बरोबर आहे का? (होय/नाही)", streamName)
	}
	return fmt.Sprintf("Based on your answers, it appears you are in the %s stream. Is this correct? (Yes/No)", streamName)
}

func askStreamMessage(lang domain.Language) string {
	if lang == domain.LangMarathi {
		return "तुमचा शैक्षणिक स्ट्रीम काय आहे? (PCM/PCB/Commerce/Arts/Vocational)"
	}
	return "What is your academic stream? (PCM/PCB/Commerce/Arts/Vocational)"
}

func invalidStreamMessage(lang domain.Language) string {
	if lang == domain.LangMarathi {
		return "अवैध स्ट्रीम. कृपया PCM, PCB, Commerce, Arts किंवा Vocational निवडा."
	}
	return "Invalid stream. Please choose PCM, PCB, Commerce, Arts, or Vocational."
}

func recommendationsHeader(lang domain.Language) string {
	if lang == domain.LangMarathi {
		return "तुमच्या प्रोफाइलवर आधारित, येथे 3 करिअर शिफारसी आहेत:"
	}
	return "**Based on your profile, here are 3 career recommendations:**"
}

func disclaimerMessage(lang domain.Language) string {
	if lang == domain.LangMarathi {
		return "⚠️ **महत्वाचे:** हे मार्गदर्शन केवळ सूचक आहे. कृपया तुमचा निर्णय प्रमाणित मानवी करिअर काउन्सेलरसोबत पुष्टी करा."
	}
	return "⚠️ **Important:** This guidance is indicative only. Please confirm your decision with a certified human career counselor."
}

func conversationCompleteMessage(lang domain.Language) string {
	if lang == domain.LangMarathi {
		return "संभाषण पूर्ण झाले आहे. पुन्हा सुरू करण्यासाठी, कृपया 'Restart' बटण वापरा."
	}
	return "Conversation is complete. To start again, please use the 'Restart' button."
}

func noCareersMessage(lang domain.Language) string {
	if lang == domain.LangMarathi {
		return "क्षमस्व, या स्ट्रीमसाठी सध्या करिअर माहिती उपलब्ध नाही. कृपया करिअर काउन्सेलरशी संपर्क साधा."
	}
	return "Sorry, no career data is available for this stream right now. Please reach out to a career counselor."
}

// affirmations and denials accepted at the stream-confirmation step.
var (
	affirmWords = []string{"yes", "y", "होय", "हो"}
	denyWords   = []string{"no", "n", "नाही", "नको"}
)
