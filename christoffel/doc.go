// Package christoffel codes digital straight lines by lower Christoffel
// words, using the splits of the lazily built Stern–Brocot tree.
//
// What:
//
//   - Word(f) is the lower Christoffel word of p/q over {0, 1}: q letters 0
//     (horizontal steps) and p letters 1 (vertical steps), with
//     W(0/1) = "0", W(1/0) = "1" and W(f1 ⊕ f2) = W(f1)·W(f2).
//   - Encode(f) keeps the word in run-length form, W(f) = W(f1)^nb1 W(f2)^nb2,
//     following Fraction.SplitBerstel. Its size is the depth of f.
//   - Recognize(s, w) returns the slope of a Christoffel word.
//   - Line is the standard arithmetic line Mu ≤ A·x − B·y < Mu + A + B.
//
// Complexity:
//
//   - Encode: O(K()) patterns, shared between levels.
//   - Word, Pattern.String: O(p + q).
//   - Recognize: O(len(w)).
//   - Line.Code: O(n).
package christoffel
