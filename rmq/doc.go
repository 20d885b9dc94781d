package rmq

/*

# Constant-time range-minimum queries

Range-minimum queries in O(1) after linear preprocessing, using the block
decomposition of Fischer and Heun.

The input is split into blocks of about log(n)/4 values. A query range is
the junction of at most two partial blocks and a run of whole blocks:

	values   ················[■■·····|·······|·······|···■■■■]···········
	                         ^ partial  whole   whole   partial ^
	                       query i                            query j

Whole-block runs are answered by a doubling sparse table over the block
minima. Partial blocks are answered by tables precomputed per block
*shape*: two blocks whose values rise and fall in the same pattern share
every answer index-wise, and the pattern is fingerprinted by replaying the
stack discipline of Cartesian tree construction. Only O(sqrt(n))-ish
distinct shapes occur at this block size, so the tables stay tiny.

When the minimum value occurs more than once in a range, RangeMin returns
the leftmost occurrence.

References:

  - Fischer, Heun: Theoretical and Practical Improvements on the
    RMQ-Problem, with Applications to LCA and LCE. CPM 2006.
  - Bender, Farach-Colton: The LCA Problem Revisited. LATIN 2000.

*/
