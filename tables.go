package main

// Context-specific replies, used instead of the response bank when the
// matching user flag is set.
const (
	sellerProductsReply  = "En tant que vendeur, vous pouvez gérer vos produits depuis votre tableau de bord. Voulez-vous ajouter un nouveau produit ?"
	loggedInAccountReply = "Vous êtes déjà connecté ! Vous pouvez accéder à votre profil ou gérer vos annonces."
)

// defaultBank returns the built-in Tomati Market tables.
// Order of FAQ and Keywords is part of the contract.
func defaultBank() Bank {
	return Bank{
		FAQ: []FAQEntry{
			{Phrase: "comment vendre", Answer: "Pour vendre sur Tomati Market : 1) Créez un compte, 2) Connectez-vous, 3) Cliquez sur 'Vendre un article', 4) Ajoutez photos et description, 5) Publiez votre annonce !"},
			{Phrase: "comment acheter", Answer: "Pour acheter : 1) Parcourez les produits, 2) Contactez le vendeur via la messagerie, 3) Convenez des modalités, 4) Finalisez la transaction."},
			{Phrase: "frais", Answer: "Tomati Market est gratuit pour les acheteurs et vendeurs. Aucun frais caché !"},
			{Phrase: "sécurité", Answer: "Pour votre sécurité : rencontrez-vous dans des lieux publics, vérifiez l'identité, évitez les paiements à l'avance."},
			{Phrase: "contact", Answer: "Vous pouvez nous contacter via le formulaire de contact ou directement par notre messagerie interne."},
		},
		Keywords: []KeywordSet{
			{Intent: IntentGreetings, Triggers: []string{"bonjour", "salut", "hello", "hi", "bonsoir", "bonne journée"}},
			{Intent: IntentProducts, Triggers: []string{"produit", "article", "item", "achat", "acheter", "vendre", "vente"}},
			{Intent: IntentDelivery, Triggers: []string{"livraison", "livrer", "expédition", "envoyer", "délai", "transport"}},
			{Intent: IntentPayment, Triggers: []string{"paiement", "payer", "prix", "coût", "tarif", "montant", "facture"}},
			{Intent: IntentAccount, Triggers: []string{"compte", "profil", "inscription", "connexion", "mot de passe"}},
			{Intent: IntentSupport, Triggers: []string{"aide", "problème", "erreur", "bug", "support", "assistance"}},
			{Intent: IntentGoodbye, Triggers: []string{"au revoir", "bye", "à bientôt", "merci", "à plus"}},
		},
		Responses: map[Intent][]string{
			IntentGreetings: {
				"Bonjour ! Je suis votre assistant Tomati. Comment puis-je vous aider aujourd'hui ?",
				"Salut ! Bienvenue sur Tomati Market. Que puis-je faire pour vous ?",
				"Bonjour ! Je suis là pour répondre à vos questions sur notre marketplace.",
			},
			IntentProducts: {
				"Nous avons une large gamme de produits sur Tomati Market. Vous pouvez parcourir nos catégories ou utiliser la recherche pour trouver ce que vous cherchez. Avez-vous un produit particulier en tête ?",
				"Pour vendre un produit, connectez-vous à votre compte et cliquez sur 'Vendre un article'. Pour acheter, parcourez nos offres et contactez directement les vendeurs.",
				"Tous nos produits sont vérifiés par notre équipe. Vous pouvez voir les détails, photos et contacter le vendeur pour plus d'informations.",
			},
			IntentDelivery: {
				"La livraison dépend du vendeur et de votre localisation. Chaque vendeur indique ses conditions de livraison sur sa fiche produit.",
				"Les délais de livraison varient selon le vendeur et la région. Contactez directement le vendeur pour connaître les délais exacts.",
				"Vous pouvez convenir des modalités de livraison directement avec le vendeur via notre système de messagerie.",
			},
			IntentPayment: {
				"Les paiements se font directement entre acheteur et vendeur. Nous recommandons les paiements sécurisés et de vérifier l'identité du vendeur.",
				"Les prix sont fixés par chaque vendeur. Vous pouvez négocier directement avec eux via notre messagerie.",
				"Pour votre sécurité, évitez les paiements à l'avance et privilégiez les rencontres en personne ou les paiements sécurisés.",
			},
			IntentAccount: {
				"Pour créer un compte, cliquez sur 'S'inscrire' en haut de la page. C'est gratuit et rapide !",
				"Si vous avez oublié votre mot de passe, utilisez l'option 'Mot de passe oublié' sur la page de connexion.",
				"Vous pouvez modifier vos informations de profil en vous connectant et en allant dans 'Mon Profil'.",
			},
			IntentSupport: {
				"Si vous rencontrez un problème technique, essayez de rafraîchir la page ou de vous reconnecter.",
				"Pour signaler un problème avec un vendeur ou un acheteur, contactez notre équipe support.",
				"Notre équipe est là pour vous aider. Pouvez-vous me décrire votre problème plus précisément ?",
			},
			IntentGoodbye: {
				"Au revoir ! N'hésitez pas à revenir si vous avez d'autres questions.",
				"Merci d'avoir utilisé Tomati Market ! À bientôt !",
				"Bonne journée ! J'espère que vous trouverez ce que vous cherchez sur notre marketplace.",
			},
			IntentDefault: {
				"Je ne suis pas sûr de comprendre votre question. Pouvez-vous la reformuler ?",
				"Pouvez-vous être plus précis ? Je peux vous aider avec les produits, la livraison, les paiements ou votre compte.",
				"Je suis là pour vous aider ! Posez-moi des questions sur Tomati Market, nos produits ou services.",
			},
		},
		Suggestions: map[Intent][]string{
			IntentGreetings: {"Comment vendre un produit ?", "Comment acheter ?", "Y a-t-il des frais ?"},
			IntentProducts:  {"Comment fixer un prix ?", "Comment ajouter des photos ?", "Politique de retour ?"},
			IntentDelivery:  {"Zones de livraison", "Frais de transport", "Délais moyens"},
			IntentPayment:   {"Moyens de paiement sûrs", "Éviter les arnaques", "Négocier le prix"},
			IntentAccount:   {"Modifier mon profil", "Supprimer mon compte", "Problème de connexion"},
			IntentSupport:   {"Signaler un problème", "Contacter l'équipe", "FAQ complète"},
			// goodbye has no dedicated prompts and reuses the default ones
			IntentGoodbye: {"Vendre un produit", "Acheter un article", "Créer un compte", "Nous contacter"},
			IntentDefault: {"Vendre un produit", "Acheter un article", "Créer un compte", "Nous contacter"},
		},
	}
}
